package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PizzaKind separates the savoury and sweet sections of the menu.
type PizzaKind string

const (
	PizzaSalgada PizzaKind = "salgada"
	PizzaDoce    PizzaKind = "doce"
)

// Pizza is one flavour on the rodízio menu.
type Pizza struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	Ingredients string    `json:"ingredientes"`
	ImageURL    string    `json:"imagem_url,omitempty"`
	Active      bool      `json:"ativo"`
	Order       int       `json:"ordem"`
	Kind        PizzaKind `json:"tipo"`
}

// PizzaUpdate supports PATCH-style updates via key presence.
type PizzaUpdate struct {
	Name        *string `json:"nome" validate:"omitempty,min=2,max=120"`
	Ingredients *string `json:"ingredientes"`
	ImageURL    *string `json:"imagem_url" validate:"omitempty,url"`
	Active      *bool   `json:"ativo"`
	Order       *int    `json:"ordem" validate:"omitempty,gte=0"`
	Kind        *string `json:"tipo" validate:"omitempty,oneof=salgada doce"`
}

// Setting is one row of the key/value configuration table.
type Setting struct {
	Key    string `json:"chave"`
	Value  string `json:"valor"`
	Active bool   `json:"ativo"`
}

// DocumentKind names the two generated documents.
type DocumentKind string

const (
	KindContract DocumentKind = "contrato"
	KindReceipt  DocumentKind = "recibo"
)

// ParseDocumentKind accepts the stored value or its English name.
func ParseDocumentKind(s string) (DocumentKind, bool) {
	switch s {
	case "contrato", "contract":
		return KindContract, true
	case "recibo", "receipt":
		return KindReceipt, true
	default:
		return "", false
	}
}

// DocumentRecord is the history entry kept when staff issue a document.
type DocumentRecord struct {
	ID           string          `json:"id"`
	Kind         DocumentKind    `json:"tipo"`
	BookingID    string          `json:"formulario_id"`
	ClientName   string          `json:"nome_cliente"`
	EventDate    string          `json:"data_evento"`
	EventTime    string          `json:"horario"`
	EventAddress string          `json:"endereco_evento"`
	Adults       int             `json:"quantidade_adultos"`
	Children     int             `json:"quantidade_criancas"`
	Total        decimal.Decimal `json:"valor_total"`
	Notes        string          `json:"observacoes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// AdminUser can log into the admin area.
type AdminUser struct {
	ID           string `json:"id"`
	Name         string `json:"nome"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
