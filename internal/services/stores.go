package services

import (
	"context"

	"pizzahouse/internal/domain/models"
)

// Storage ports implemented by internal/repositories.

type BookingStore interface {
	Create(ctx context.Context, b models.Booking) error
	GetByID(ctx context.Context, id string) (models.Booking, error)
	List(ctx context.Context, f models.BookingFilter) ([]models.Booking, error)
	Update(ctx context.Context, id string, upd models.BookingUpdate) error
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, month string) (models.BookingStats, error)
}

type SettingsStore interface {
	Active(ctx context.Context) (map[string]string, error)
	UpsertMany(ctx context.Context, values map[string]string) error
}

type PizzaStore interface {
	List(ctx context.Context, onlyActive bool) ([]models.Pizza, error)
	GetByID(ctx context.Context, id string) (models.Pizza, error)
	Create(ctx context.Context, p models.Pizza) error
	Update(ctx context.Context, id string, upd models.PizzaUpdate) error
	Delete(ctx context.Context, id string) error
}

type DocumentStore interface {
	Create(ctx context.Context, d models.DocumentRecord) error
	List(ctx context.Context, bookingID string, limit int) ([]models.DocumentRecord, error)
}

type AdminUserStore interface {
	GetByEmail(ctx context.Context, email string) (models.AdminUser, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, u models.AdminUser) error
}

// BookingEvents is notified after a quote request is stored.
type BookingEvents interface {
	PublishBookingSubmitted(ctx context.Context, requestID string, b models.Booking) error
}
