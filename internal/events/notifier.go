package events

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

// Notifier tells staff about new quote requests. Today it only logs.
type Notifier struct {
	log      *zap.Logger
	messages <-chan *message.Message
	// OnSubmitted is called for every decoded event when set.
	OnSubmitted func(BookingSubmitted)
}

func NewNotifier(ctx context.Context, log *zap.Logger, subscriber message.Subscriber) (*Notifier, error) {
	msgs, err := subscriber.Subscribe(ctx, TopicBookingSubmitted)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{log: log, messages: msgs}, nil
}

// Run consumes until ctx is done or the subscription closes.
func (n *Notifier) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-n.messages:
			if !ok {
				return nil
			}
			n.handle(msg)
		}
	}
}

func (n *Notifier) handle(msg *message.Message) {
	var ev BookingSubmitted
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		n.log.Error("invalid booking event",
			zap.String("message_id", msg.UUID),
			zap.Error(err),
		)
		// Malformed payloads never become valid; ack to drop them.
		msg.Ack()
		return
	}

	n.log.Info("novo orçamento recebido",
		zap.String("request_id", msg.Metadata.Get("correlation_id")),
		zap.String("booking_id", ev.BookingID),
		zap.String("cliente", ev.ClientName),
		zap.String("data_evento", ev.EventDate),
		zap.String("horario", ev.EventTime),
		zap.Int("pessoas", ev.Guests),
	)
	if n.OnSubmitted != nil {
		n.OnSubmitted(ev)
	}
	msg.Ack()
}
