package events

import (
	"context"
	"testing"
	"time"

	"pizzahouse/internal/domain/models"

	"go.uber.org/zap"
)

func TestPublishBookingSubmittedReachesNotifier(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier, err := NewNotifier(ctx, zap.NewNop(), bus.Subscriber())
	if err != nil {
		t.Fatalf("subscribe error: %v", err)
	}
	got := make(chan BookingSubmitted, 1)
	notifier.OnSubmitted = func(ev BookingSubmitted) { got <- ev }
	go func() { _ = notifier.Run(ctx) }()

	b := models.Booking{
		ID:        "abc-123",
		FullName:  "Maria Silva",
		EventDate: "2025-12-24",
		EventTime: "19:00",
		Adults:    10,
		Children:  2,
	}
	if err := NewBookingPublisher(bus.Publisher()).PublishBookingSubmitted(ctx, "req-1", b); err != nil {
		t.Fatalf("publish error: %v", err)
	}

	select {
	case ev := <-got:
		if ev.BookingID != "abc-123" || ev.Guests != 12 {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("event not delivered")
	}
}
