package events

import (
	"context"
	"encoding/json"
	"time"

	"pizzahouse/internal/domain/models"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// TopicBookingSubmitted carries every quote request accepted by the public form.
const TopicBookingSubmitted = "booking.submitted"

// BookingSubmitted is the payload published on TopicBookingSubmitted.
type BookingSubmitted struct {
	BookingID   string    `json:"booking_id"`
	ClientName  string    `json:"nome_completo"`
	Phone       string    `json:"telefone"`
	EventDate   string    `json:"data_evento"`
	EventTime   string    `json:"horario"`
	Guests      int       `json:"total_pessoas"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Bus is an in-process pub/sub backed by watermill's go channel implementation.
type Bus struct {
	pubSub *gochannel.GoChannel
}

func NewBus() *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			watermill.NopLogger{},
		),
	}
}

func (b *Bus) Publisher() message.Publisher   { return b.pubSub }
func (b *Bus) Subscriber() message.Subscriber { return b.pubSub }

func (b *Bus) Close() error {
	return b.pubSub.Close()
}

// BookingPublisher publishes booking events with the request id as correlation id.
type BookingPublisher struct {
	publisher message.Publisher
}

func NewBookingPublisher(publisher message.Publisher) *BookingPublisher {
	return &BookingPublisher{publisher: publisher}
}

func (p *BookingPublisher) PublishBookingSubmitted(ctx context.Context, requestID string, b models.Booking) error {
	payload, err := json.Marshal(BookingSubmitted{
		BookingID:   b.ID,
		ClientName:  b.FullName,
		Phone:       b.Phone,
		EventDate:   b.EventDate,
		EventTime:   b.EventTime,
		Guests:      b.Guests(),
		SubmittedAt: b.CreatedAt,
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("correlation_id", requestID)
	msg.Metadata.Set("type", "BookingSubmitted")

	return p.publisher.Publish(TopicBookingSubmitted, msg)
}
