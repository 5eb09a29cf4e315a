package services

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"pizzahouse/internal/domain/models"
	"pizzahouse/internal/utils"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var documentTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// EventDurationHours is how long the rodízio runs after the start time.
const EventDurationHours = 3

// ExtraTimeFee is charged per half hour past the contracted end time.
var ExtraTimeFee = decimal.NewFromInt(300)

// Company is the contracted party printed on every document.
type Company struct {
	Name           string
	TradeName      string
	Street         string
	District       string
	ZipCode        string
	City           string
	State          string
	TaxID          string
	Representative string
	BankAccount    string
}

// JuliosPizzaHouse is the fixed identity block.
var JuliosPizzaHouse = Company{
	Name:           "JULIO'S PIZZA HOUSE",
	TradeName:      "Júlio's Pizza House",
	Street:         "Rua Alzira Postali Gewrher, nº 119",
	District:       "Jardim Catuai",
	ZipCode:        "86086-230",
	City:           "Londrina",
	State:          "Paraná",
	TaxID:          "034.988.389-03",
	Representative: "Júlio Cesar Fermino",
	BankAccount:    "Caixa Econômica - Ag: 1479 - Conta: 00028090-5",
}

// Document is a generated plain-text contract or receipt.
type Document struct {
	Kind     models.DocumentKind `json:"tipo"`
	Title    string              `json:"titulo"`
	Filename string              `json:"filename"`
	Body     string              `json:"conteudo"`
	Price    PriceBreakdown      `json:"preco"`
}

type documentView struct {
	Company            Company
	Number             string
	ClientName         string
	ClientNameUpper    string
	ClientCPF          string
	ClientAddress      string
	ClientAddressUpper string
	EventDate          string
	StartTime          string
	EndTime            string
	EventAddress       string
	EventAddressUpper  string
	Adults             int
	Children           int
	Guests             int
	AdultPrice         string
	ChildPrice         string
	Total              string
	DepositPercent     string
	Deposit            string
	DepositWords       string
	Balance            string
	ExtraTimeFee       string
	SignatureCity      string
	IssuedAt           string
}

// GenerateContract renders the service contract for a booking.
// Output depends only on the booking, the pricing config and the date of now.
func GenerateContract(b models.Booking, cfg PricingConfig, now time.Time) (Document, error) {
	price := CalculatePrice(b.Adults, b.Children, cfg)
	body, err := render("contract.tmpl", newDocumentView(b, price, now))
	if err != nil {
		return Document{}, err
	}
	return Document{
		Kind:     models.KindContract,
		Title:    "Contrato de Prestação de Serviços",
		Filename: documentFilename(models.KindContract, b.FullName),
		Body:     body,
		Price:    price,
	}, nil
}

// GenerateReceipt renders the deposit receipt for a booking.
func GenerateReceipt(b models.Booking, cfg PricingConfig, now time.Time) (Document, error) {
	price := CalculatePrice(b.Adults, b.Children, cfg)
	body, err := render("receipt.tmpl", newDocumentView(b, price, now))
	if err != nil {
		return Document{}, err
	}
	return Document{
		Kind:     models.KindReceipt,
		Title:    "Recibo de Entrada",
		Filename: documentFilename(models.KindReceipt, b.FullName),
		Body:     body,
		Price:    price,
	}, nil
}

// ReceiptNumber is the first 8 characters of the booking id, upper-cased.
func ReceiptNumber(bookingID string) string {
	id := []rune(strings.TrimSpace(bookingID))
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(string(id))
}

func newDocumentView(b models.Booking, p PriceBreakdown, now time.Time) documentView {
	return documentView{
		Company:            JuliosPizzaHouse,
		Number:             ReceiptNumber(b.ID),
		ClientName:         strings.TrimSpace(b.FullName),
		ClientNameUpper:    strings.ToUpper(strings.TrimSpace(b.FullName)),
		ClientCPF:          strings.TrimSpace(b.CPF),
		ClientAddress:      strings.TrimSpace(b.Address),
		ClientAddressUpper: strings.ToUpper(strings.TrimSpace(b.Address)),
		EventDate:          utils.DateBR(b.EventDate),
		StartTime:          utils.ClockHM(b.EventTime),
		EndTime:            utils.AddClockHours(b.EventTime, EventDurationHours),
		EventAddress:       strings.TrimSpace(b.EventAddress),
		EventAddressUpper:  strings.ToUpper(strings.TrimSpace(b.EventAddress)),
		Adults:             p.Adults,
		Children:           p.Children,
		Guests:             p.Guests,
		AdultPrice:         utils.FormatReais(p.Config.AdultPrice),
		ChildPrice:         utils.FormatReais(p.Config.ChildPrice),
		Total:              utils.FormatReais(p.Total),
		DepositPercent:     utils.FormatPercent(p.Config.DepositPercent),
		Deposit:            utils.FormatReais(p.Deposit),
		DepositWords:       utils.AmountToWords(p.Deposit),
		Balance:            utils.FormatReais(p.Balance),
		ExtraTimeFee:       utils.FormatReais(ExtraTimeFee),
		SignatureCity:      strings.ToUpper(JuliosPizzaHouse.City),
		IssuedAt:           utils.FormatDateBR(now),
	}
}

func render(name string, view documentView) (string, error) {
	var sb strings.Builder
	if err := documentTemplates.ExecuteTemplate(&sb, name, view); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return sb.String(), nil
}

func documentFilename(kind models.DocumentKind, clientName string) string {
	return fmt.Sprintf("%s_%s.txt", kind, utils.SafeFilenamePart(clientName))
}
