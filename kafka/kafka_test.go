package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
)

func TestPublishPaymentEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()

	var sent PaymentEvent
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != TopicPaymentEvents {
			t.Errorf("topic = %q", msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "order_1" {
			t.Errorf("key = %q", key)
		}
		var eventType string
		for _, h := range msg.Headers {
			if string(h.Key) == "event_type" {
				eventType = string(h.Value)
			}
		}
		if eventType != EventTypePaymentCompleted {
			t.Errorf("event_type header = %q", eventType)
		}
		value, _ := msg.Value.Encode()
		return json.Unmarshal(value, &sent)
	})

	p := newPublisherWithProducer(producer, nil)
	err := p.PublishPaymentEvent(context.Background(), PaymentEvent{
		EventType:     EventTypePaymentCompleted,
		PaymentID:     3,
		OrderID:       "order_1",
		CustomerEmail: "a@b.com",
		FinalAmount:   4499,
		Currency:      "INR",
	})
	if err != nil {
		t.Fatalf("PublishPaymentEvent: %v", err)
	}
	if sent.EventID == "" || sent.Timestamp.IsZero() || sent.FinalAmount != 4499 {
		t.Errorf("sent = %+v", sent)
	}
}

func TestPublishPaymentEventErrors(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := newPublisherWithProducer(producer, nil)
	err := p.PublishPaymentEvent(context.Background(), PaymentEvent{EventType: EventTypePaymentFailed, OrderID: "o"})
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Errorf("err = %v", err)
	}

	if err := p.PublishPaymentEvent(context.Background(), PaymentEvent{EventType: "payment.refunded"}); err == nil {
		t.Error("unknown event type accepted")
	}
}

func message(eventType string, v interface{}) *sarama.ConsumerMessage {
	body, _ := json.Marshal(v)
	return &sarama.ConsumerMessage{
		Topic: TopicPaymentEvents,
		Value: body,
		Headers: []*sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventType)},
			{Key: []byte("event_id"), Value: []byte("evt_1")},
		},
	}
}

func TestHandleMessageDispatchesByType(t *testing.T) {
	c := newConsumer([]string{TopicPaymentEvents})

	var completed, failed []PaymentEvent
	c.RegisterHandler(EventTypePaymentCompleted, func(ctx context.Context, e PaymentEvent) error {
		completed = append(completed, e)
		return nil
	})
	c.RegisterHandler(EventTypePaymentFailed, func(ctx context.Context, e PaymentEvent) error {
		failed = append(failed, e)
		return errors.New("smtp down")
	})

	ctx := context.Background()
	if err := c.handleMessage(ctx, message(EventTypePaymentCompleted, PaymentEvent{OrderID: "order_1"})); err != nil {
		t.Fatalf("completed: %v", err)
	}
	if err := c.handleMessage(ctx, message(EventTypePaymentFailed, PaymentEvent{OrderID: "order_2"})); err == nil {
		t.Error("handler error not returned")
	}
	if len(completed) != 1 || completed[0].OrderID != "order_1" || len(failed) != 1 {
		t.Errorf("completed = %+v, failed = %+v", completed, failed)
	}

	if err := c.handleMessage(ctx, message("user.created", PaymentEvent{})); !errors.Is(err, ErrNoHandler) {
		t.Errorf("err = %v, want ErrNoHandler", err)
	}
	if err := c.handleMessage(ctx, &sarama.ConsumerMessage{Value: []byte("{}")}); !errors.Is(err, ErrNoHandler) {
		t.Errorf("err = %v, want ErrNoHandler", err)
	}

	bad := message(EventTypePaymentCompleted, nil)
	bad.Value = []byte("{not json")
	if err := c.handleMessage(ctx, bad); err == nil {
		t.Error("malformed payload accepted")
	}
}
