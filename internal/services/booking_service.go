package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pizzahouse/internal/domain"
	"pizzahouse/internal/domain/models"
	"pizzahouse/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService struct {
	Bookings BookingStore
	Events   BookingEvents
	Log      *zap.Logger
	Now      func() time.Time
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s BookingService) log() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}

// Create stores a new quote request as pending and announces it.
// A failed publish is logged; the request is already stored.
func (s BookingService) Create(ctx context.Context, requestID string, in models.BookingInput) (models.Booking, error) {
	in = trimBookingInput(in)
	if errs := utils.ValidateStruct(in); errs != nil {
		return models.Booking{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	b := models.Booking{
		ID:           uuid.NewString(),
		FullName:     in.FullName,
		CPF:          in.CPF,
		Phone:        in.Phone,
		Address:      in.Address,
		EventAddress: in.EventAddress,
		EventDate:    in.EventDate,
		EventTime:    utils.ClockHM(in.EventTime),
		Adults:       in.Adults,
		Children:     in.Children,
		Notes:        in.Notes,
		Status:       models.StatusPending,
		CreatedAt:    s.now(),
	}
	if err := s.Bookings.Create(ctx, b); err != nil {
		return models.Booking{}, domain.InternalError{Msg: "falha ao salvar orçamento", Err: err}
	}
	utils.LogEvent(s.log(), requestID, "bookings", "create",
		zap.String("booking_id", b.ID),
		zap.Int("guests", b.Guests()),
	)

	if s.Events != nil {
		if err := s.Events.PublishBookingSubmitted(ctx, requestID, b); err != nil {
			s.log().Warn("publish booking.submitted failed",
				zap.String("request_id", requestID),
				zap.String("booking_id", b.ID),
				zap.Error(err),
			)
		}
	}
	return b, nil
}

func (s BookingService) List(ctx context.Context, f models.BookingFilter) ([]models.Booking, error) {
	if f.Month != "" {
		if _, err := time.Parse("2006-01", f.Month); err != nil {
			return nil, domain.ValidationError{Field: "month", Msg: "formato esperado YYYY-MM"}
		}
	}
	return s.Bookings.List(ctx, f)
}

// ListConfirmed lists the bookings that contracts and receipts can be issued for.
func (s BookingService) ListConfirmed(ctx context.Context) ([]models.Booking, error) {
	return s.List(ctx, models.BookingFilter{Status: models.StatusConfirmed})
}

func (s BookingService) Get(ctx context.Context, id string) (models.Booking, error) {
	return s.Bookings.GetByID(ctx, id)
}

func (s BookingService) Update(ctx context.Context, requestID, id string, upd models.BookingUpdate) (models.Booking, error) {
	if upd.Empty() {
		return models.Booking{}, domain.ValidationError{Msg: "nenhum campo para atualizar"}
	}
	if errs := utils.ValidateStruct(upd); errs != nil {
		return models.Booking{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}
	current, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}
	if current.Status == models.StatusCompleted {
		return models.Booking{}, domain.ConflictError{Resource: "orçamento", Msg: "orçamento concluído não pode ser alterado"}
	}
	if upd.EventTime != nil {
		hm := utils.ClockHM(*upd.EventTime)
		upd.EventTime = &hm
	}
	if err := s.Bookings.Update(ctx, id, upd); err != nil {
		return models.Booking{}, domain.InternalError{Msg: "falha ao atualizar orçamento", Err: err}
	}
	utils.LogEvent(s.log(), requestID, "bookings", "update", zap.String("booking_id", id))
	return s.Bookings.GetByID(ctx, id)
}

func (s BookingService) UpdateStatus(ctx context.Context, requestID, id, rawStatus string) (models.Booking, error) {
	next, ok := models.ParseBookingStatus(rawStatus)
	if !ok {
		return models.Booking{}, domain.ValidationError{Field: "status", Msg: "status inválido"}
	}
	current, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}
	if !current.Status.CanTransitionTo(next) {
		return models.Booking{}, domain.ConflictError{
			Resource: "orçamento",
			Msg:      fmt.Sprintf("não é possível mudar de %s para %s", current.Status, next),
		}
	}
	if current.Status != next {
		if err := s.Bookings.UpdateStatus(ctx, id, next); err != nil {
			return models.Booking{}, domain.InternalError{Msg: "falha ao atualizar status", Err: err}
		}
		utils.LogEvent(s.log(), requestID, "bookings", "update_status",
			zap.String("booking_id", id),
			zap.String("from", string(current.Status)),
			zap.String("to", string(next)),
		)
	}
	current.Status = next
	return current, nil
}

func (s BookingService) Delete(ctx context.Context, requestID, id string) error {
	if err := s.Bookings.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(s.log(), requestID, "bookings", "delete", zap.String("booking_id", id))
	return nil
}

func (s BookingService) Stats(ctx context.Context, month string) (models.BookingStats, error) {
	if month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			return models.BookingStats{}, domain.ValidationError{Field: "month", Msg: "formato esperado YYYY-MM"}
		}
	}
	return s.Bookings.CountByStatus(ctx, month)
}

func trimBookingInput(in models.BookingInput) models.BookingInput {
	in.FullName = utils.NormalizeSpace(in.FullName)
	in.CPF = strings.TrimSpace(in.CPF)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.EventAddress = strings.TrimSpace(in.EventAddress)
	in.EventDate = strings.TrimSpace(in.EventDate)
	in.EventTime = strings.TrimSpace(in.EventTime)
	in.Notes = strings.TrimSpace(in.Notes)
	return in
}
