package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"pizzahouse/internal/domain"
	"pizzahouse/internal/domain/models"
	"pizzahouse/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var bookingRowColumns = []string{
	"id", "nome_completo", "cpf", "telefone", "endereco", "endereco_evento",
	"data_evento", "horario", "quantidade_adultos", "quantidade_criancas",
	"observacoes", "status", "created_at",
}

type recordedEvents struct {
	published []models.Booking
	err       error
}

func (r *recordedEvents) PublishBookingSubmitted(_ context.Context, _ string, b models.Booking) error {
	r.published = append(r.published, b)
	return r.err
}

func validBookingInput() models.BookingInput {
	return models.BookingInput{
		FullName:     "  Maria   da Silva ",
		CPF:          "123.456.789-00",
		Phone:        "(43) 99999-0000",
		Address:      "Rua das Flores, 10",
		EventAddress: "Chácara Recanto",
		EventDate:    "2025-12-24",
		EventTime:    "19:00",
		Adults:       10,
		Children:     2,
	}
}

func TestBookingServiceCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO formularios_contato").
		WillReturnResult(sqlmock.NewResult(0, 1))

	events := &recordedEvents{err: errors.New("bus closed")}
	svc := BookingService{
		Bookings: repositories.BookingRepository{DB: db},
		Events:   events,
		Now:      func() time.Time { return fixedNow },
	}

	b, err := svc.Create(context.Background(), "req-1", validBookingInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if b.ID == "" || b.Status != models.StatusPending || b.FullName != "Maria da Silva" {
		t.Fatalf("unexpected booking %+v", b)
	}
	if len(events.published) != 1 || events.published[0].ID != b.ID {
		t.Fatalf("event not published")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingServiceCreateValidation(t *testing.T) {
	svc := BookingService{}
	in := validBookingInput()
	in.Adults = 0
	in.EventTime = "7pm"

	_, err := svc.Create(context.Background(), "", in)
	var verr domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["quantidade_adultos"]; !ok {
		t.Fatalf("missing adults field error: %v", verr.Fields)
	}
	if _, ok := verr.Fields["horario"]; !ok {
		t.Fatalf("missing time field error: %v", verr.Fields)
	}
}

func TestBookingServiceUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM formularios_contato WHERE id=").
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows(bookingRowColumns).AddRow(
			"b1", "Maria", "1", "2", "Rua", "Local", "2025-12-24", "19:00", 10, 2, "", "pendente", fixedNow,
		))
	mock.ExpectExec("UPDATE formularios_contato SET status=\\? WHERE id=\\?").
		WithArgs("confirmado", "b1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := BookingService{Bookings: repositories.BookingRepository{DB: db}}
	b, err := svc.UpdateStatus(context.Background(), "req", "b1", "confirmed")
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if b.Status != models.StatusConfirmed {
		t.Fatalf("status = %s", b.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingServiceCompletedIsFinal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM formularios_contato WHERE id=").
		WithArgs("b2").
		WillReturnRows(sqlmock.NewRows(bookingRowColumns).AddRow(
			"b2", "Maria", "1", "2", "Rua", "Local", "2025-12-24", "19:00", 10, 0, "", "concluido", fixedNow,
		))

	svc := BookingService{Bookings: repositories.BookingRepository{DB: db}}
	if _, err := svc.UpdateStatus(context.Background(), "req", "b2", "pendente"); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "req", "b2", "unknown"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingServiceStatsRejectsBadMonth(t *testing.T) {
	svc := BookingService{}
	if _, err := svc.Stats(context.Background(), "2025/12"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
