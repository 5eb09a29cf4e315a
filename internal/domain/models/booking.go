package models

import (
	"strings"
	"time"
)

// BookingStatus is stored with the Portuguese values the admin panel always used.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pendente"
	StatusConfirmed BookingStatus = "confirmado"
	StatusCancelled BookingStatus = "cancelado"
	StatusCompleted BookingStatus = "concluido"
)

// AllStatuses in display order.
var AllStatuses = []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

// ParseBookingStatus accepts the stored value or its English name.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pendente", "pending":
		return StatusPending, true
	case "confirmado", "confirmed":
		return StatusConfirmed, true
	case "cancelado", "cancelled", "canceled":
		return StatusCancelled, true
	case "concluido", "concluído", "completed":
		return StatusCompleted, true
	default:
		return "", false
	}
}

// CanTransitionTo: completed bookings are final, everything else can move freely.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	if s == StatusCompleted {
		return false
	}
	if next == StatusCompleted {
		return s == StatusConfirmed
	}
	return true
}

// Documentable reports whether contracts/receipts may be issued.
func (s BookingStatus) Documentable() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

// Booking is a quote request ("orçamento") submitted through the public form.
type Booking struct {
	ID           string        `json:"id"`
	FullName     string        `json:"nome_completo"`
	CPF          string        `json:"cpf"`
	Phone        string        `json:"telefone"`
	Address      string        `json:"endereco"`
	EventAddress string        `json:"endereco_evento"`
	EventDate    string        `json:"data_evento"`
	EventTime    string        `json:"horario"`
	Adults       int           `json:"quantidade_adultos"`
	Children     int           `json:"quantidade_criancas"`
	Notes        string        `json:"observacoes,omitempty"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Guests is adults plus children.
func (b Booking) Guests() int {
	return max(b.Adults, 0) + max(b.Children, 0)
}

// BookingUpdate supports PATCH-style updates via key presence.
type BookingUpdate struct {
	FullName     *string `json:"nome_completo"`
	CPF          *string `json:"cpf"`
	Phone        *string `json:"telefone"`
	Address      *string `json:"endereco"`
	EventAddress *string `json:"endereco_evento"`
	EventDate    *string `json:"data_evento" validate:"omitempty,datetime=2006-01-02"`
	EventTime    *string `json:"horario" validate:"omitempty,clock"`
	Adults       *int    `json:"quantidade_adultos" validate:"omitempty,gte=1"`
	Children     *int    `json:"quantidade_criancas" validate:"omitempty,gte=0"`
	Notes        *string `json:"observacoes"`
}

// Empty reports whether no field was sent.
func (u BookingUpdate) Empty() bool {
	return u.FullName == nil && u.CPF == nil && u.Phone == nil && u.Address == nil &&
		u.EventAddress == nil && u.EventDate == nil && u.EventTime == nil &&
		u.Adults == nil && u.Children == nil && u.Notes == nil
}

// BookingFilter narrows listings. Zero value lists everything.
type BookingFilter struct {
	Status BookingStatus
	// Month is "YYYY-MM" of the event date.
	Month string
}

// BookingStats counts bookings per status.
type BookingStats struct {
	Month     string `json:"month,omitempty"`
	Pending   int    `json:"pendente"`
	Confirmed int    `json:"confirmado"`
	Cancelled int    `json:"cancelado"`
	Completed int    `json:"concluido"`
	Total     int    `json:"total"`
}

// Add counts n bookings of the given status.
func (s *BookingStats) Add(status BookingStatus, n int) {
	switch status {
	case StatusPending:
		s.Pending += n
	case StatusConfirmed:
		s.Confirmed += n
	case StatusCancelled:
		s.Cancelled += n
	case StatusCompleted:
		s.Completed += n
	}
	s.Total += n
}

// BookingInput is the public quote form.
type BookingInput struct {
	FullName     string `json:"nome_completo" validate:"required,min=3,max=255"`
	CPF          string `json:"cpf" validate:"required,min=11,max=20"`
	Phone        string `json:"telefone" validate:"required,min=8,max=30"`
	Address      string `json:"endereco" validate:"required,max=255"`
	EventAddress string `json:"endereco_evento" validate:"required,max=255"`
	EventDate    string `json:"data_evento" validate:"required,datetime=2006-01-02"`
	EventTime    string `json:"horario" validate:"required,clock"`
	Adults       int    `json:"quantidade_adultos" validate:"gte=1"`
	Children     int    `json:"quantidade_criancas" validate:"gte=0"`
	Notes        string `json:"observacoes" validate:"max=2000"`
}
