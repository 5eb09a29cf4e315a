package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"pizzahouse/internal/domain"
	"pizzahouse/internal/domain/models"
	"pizzahouse/internal/utils"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DocsService issues contracts and receipts for stored bookings.
type DocsService struct {
	Bookings  BookingStore
	Settings  SettingsStore
	Documents DocumentStore
	Log       *zap.Logger
	RequestID string
	Clock     func() time.Time
	// Loader replaces the store lookups when set.
	Loader func(ctx context.Context, bookingID string) (models.Booking, PricingConfig, error)
}

func (s DocsService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s DocsService) log() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}

func (s DocsService) Contract(ctx context.Context, bookingID string) (Document, error) {
	b, cfg, err := s.loadDocumentable(ctx, bookingID)
	if err != nil {
		return Document{}, err
	}
	utils.LogEvent(s.log(), s.RequestID, "docs", "generate_contract", zap.String("booking_id", b.ID))
	return GenerateContract(b, cfg, s.now())
}

func (s DocsService) Receipt(ctx context.Context, bookingID string) (Document, error) {
	b, cfg, err := s.loadDocumentable(ctx, bookingID)
	if err != nil {
		return Document{}, err
	}
	utils.LogEvent(s.log(), s.RequestID, "docs", "generate_receipt", zap.String("booking_id", b.ID))
	return GenerateReceipt(b, cfg, s.now())
}

func (s DocsService) ContractPDF(ctx context.Context, bookingID string) ([]byte, string, error) {
	doc, err := s.Contract(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	return buildDocumentPDF(doc)
}

func (s DocsService) ReceiptPDF(ctx context.Context, bookingID string) ([]byte, string, error) {
	doc, err := s.Receipt(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	return buildDocumentPDF(doc)
}

// Quote prices a head-count with the current settings.
func (s DocsService) Quote(ctx context.Context, adults, children int) (PriceBreakdown, error) {
	if adults < 0 || children < 0 {
		return PriceBreakdown{}, domain.ValidationError{Field: "quantidade", Msg: "quantidades não podem ser negativas"}
	}
	cfg := LoadPricing(ctx, s.Settings, s.log())
	return CalculatePrice(adults, children, cfg), nil
}

// Record stores a history row for an issued document.
func (s DocsService) Record(ctx context.Context, kind models.DocumentKind, bookingID, notes string) (models.DocumentRecord, error) {
	b, cfg, err := s.loadDocumentable(ctx, bookingID)
	if err != nil {
		return models.DocumentRecord{}, err
	}
	price := CalculatePrice(b.Adults, b.Children, cfg)
	rec := models.DocumentRecord{
		ID:           uuid.NewString(),
		Kind:         kind,
		BookingID:    b.ID,
		ClientName:   b.FullName,
		EventDate:    b.EventDate,
		EventTime:    b.EventTime,
		EventAddress: b.EventAddress,
		Adults:       price.Adults,
		Children:     price.Children,
		Total:        price.Total,
		Notes:        strings.TrimSpace(notes),
		CreatedAt:    s.now(),
	}
	if kind == models.KindReceipt {
		rec.Total = price.Deposit
	}
	if err := s.Documents.Create(ctx, rec); err != nil {
		return models.DocumentRecord{}, domain.InternalError{Msg: "falha ao registrar documento", Err: err}
	}
	utils.LogEvent(s.log(), s.RequestID, "docs", "record",
		zap.String("booking_id", b.ID),
		zap.String("kind", string(kind)),
		zap.String("total", rec.Total.StringFixed(2)),
	)
	return rec, nil
}

func (s DocsService) History(ctx context.Context, bookingID string, limit int) ([]models.DocumentRecord, error) {
	return s.Documents.List(ctx, strings.TrimSpace(bookingID), limit)
}

func (s DocsService) loadDocumentable(ctx context.Context, bookingID string) (models.Booking, PricingConfig, error) {
	var (
		b   models.Booking
		cfg PricingConfig
		err error
	)
	if s.Loader != nil {
		b, cfg, err = s.Loader(ctx, bookingID)
	} else {
		b, err = s.Bookings.GetByID(ctx, bookingID)
		if err == nil {
			cfg = LoadPricing(ctx, s.Settings, s.log())
		}
	}
	if err != nil {
		return models.Booking{}, PricingConfig{}, err
	}
	if !b.Status.Documentable() {
		return models.Booking{}, PricingConfig{}, domain.ConflictError{
			Resource: "orçamento",
			Msg:      fmt.Sprintf("documentos só podem ser emitidos para orçamentos confirmados (status atual: %s)", b.Status),
		}
	}
	return b, cfg, nil
}

// LoadPricing reads the active settings. A read failure is logged and the
// defaults are used, same as a missing key.
func LoadPricing(ctx context.Context, store SettingsStore, log *zap.Logger) PricingConfig {
	if store == nil {
		return DefaultPricingConfig()
	}
	settings, err := store.Active(ctx)
	if err != nil {
		if log != nil {
			log.Warn("pricing settings unavailable, using defaults", zap.Error(err))
		}
		return DefaultPricingConfig()
	}
	return PricingConfigFromSettings(settings)
}

var pdfRules = strings.NewReplacer(
	"═", "=",
	"─", "-",
)

func buildDocumentPDF(doc Document) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont("Courier", "", 9)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, line := range strings.Split(pdfRules.Replace(doc.Body), "\n") {
		pdf.CellFormat(0, 4, tr(line), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), pdfFilename(doc.Filename), nil
}

func pdfFilename(textName string) string {
	return strings.TrimSuffix(textName, ".txt") + ".pdf"
}

// QuoteSummary is the one-line total shown next to each booking in listings.
func QuoteSummary(p PriceBreakdown) string {
	if p.Total.Equal(decimal.Zero) {
		return utils.FormatReais(decimal.Zero)
	}
	return fmt.Sprintf("%s (entrada %s)", utils.FormatReais(p.Total), utils.FormatReais(p.Deposit))
}
