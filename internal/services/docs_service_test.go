package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pizzahouse/internal/domain"
	"pizzahouse/internal/domain/models"
)

type memSettings struct {
	values map[string]string
	err    error
	saved  map[string]string
}

func (m *memSettings) Active(context.Context) (map[string]string, error) {
	return m.values, m.err
}

func (m *memSettings) UpsertMany(_ context.Context, v map[string]string) error {
	m.saved = v
	return nil
}

type memDocuments struct {
	created []models.DocumentRecord
}

func (m *memDocuments) Create(_ context.Context, d models.DocumentRecord) error {
	m.created = append(m.created, d)
	return nil
}

func (m *memDocuments) List(context.Context, string, int) ([]models.DocumentRecord, error) {
	return m.created, nil
}

func loaderFor(b models.Booking) func(context.Context, string) (models.Booking, PricingConfig, error) {
	return func(_ context.Context, id string) (models.Booking, PricingConfig, error) {
		if id != b.ID {
			return models.Booking{}, PricingConfig{}, domain.NotFoundError{Resource: "orçamento"}
		}
		return b, DefaultPricingConfig(), nil
	}
}

func TestDocsServiceGenerate(t *testing.T) {
	b := sampleBooking()
	svc := DocsService{Loader: loaderFor(b), Clock: func() time.Time { return fixedNow }}

	doc, err := svc.Contract(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("Contract returned error: %v", err)
	}
	if !strings.Contains(doc.Body, "R$ 604,00") {
		t.Fatalf("contract total missing")
	}

	pdf, filename, err := svc.ContractPDF(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("ContractPDF returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) || filename != "contrato_Maria_da_Silva.pdf" {
		t.Fatalf("unexpected pdf output: %d bytes, %q", len(pdf), filename)
	}

	receipt, recName, err := svc.ReceiptPDF(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("ReceiptPDF returned error: %v", err)
	}
	if len(receipt) == 0 || recName != "recibo_Maria_da_Silva.pdf" {
		t.Fatalf("ReceiptPDF returned empty data")
	}
}

func TestDocsServiceRejectsUnconfirmedBookings(t *testing.T) {
	b := sampleBooking()
	b.Status = models.StatusPending
	svc := DocsService{Loader: loaderFor(b)}

	if _, err := svc.Receipt(context.Background(), b.ID); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if _, err := svc.Contract(context.Background(), "other"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDocsServiceQuoteUsesSettings(t *testing.T) {
	svc := DocsService{Settings: &memSettings{values: map[string]string{SettingAdultPrice: "60"}}}
	p, err := svc.Quote(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("Quote error: %v", err)
	}
	if !p.Total.Equal(dec("147")) {
		t.Fatalf("total = %s", p.Total)
	}

	if _, err := svc.Quote(context.Background(), -1, 0); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	broken := DocsService{Settings: &memSettings{err: errors.New("db down")}}
	p, err = broken.Quote(context.Background(), 1, 0)
	if err != nil || !p.Total.Equal(dec("55")) {
		t.Fatalf("expected default pricing on settings failure, got %s %v", p.Total, err)
	}
}

func TestDocsServiceRecord(t *testing.T) {
	b := sampleBooking()
	docs := &memDocuments{}
	svc := DocsService{Loader: loaderFor(b), Documents: docs, Clock: func() time.Time { return fixedNow }}

	rec, err := svc.Record(context.Background(), models.KindReceipt, b.ID, " entrada paga ")
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if len(docs.created) != 1 || rec.BookingID != b.ID || rec.Notes != "entrada paga" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if !rec.Total.Equal(dec("241.60")) {
		t.Fatalf("receipt record should carry the deposit, got %s", rec.Total)
	}
	if !rec.CreatedAt.Equal(fixedNow) {
		t.Fatalf("created_at = %s", rec.CreatedAt)
	}
}
