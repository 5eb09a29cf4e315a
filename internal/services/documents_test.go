package services

import (
	"strings"
	"testing"
	"time"

	"pizzahouse/internal/domain/models"
)

var fixedNow = time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)

func sampleBooking() models.Booking {
	return models.Booking{
		ID:           "abcdef1234567890",
		FullName:     "Maria da Silva",
		CPF:          "123.456.789-00",
		Phone:        "(43) 99999-0000",
		Address:      "Rua das Flores, 10",
		EventAddress: "Chácara Recanto, km 5",
		EventDate:    "2025-12-24",
		EventTime:    "19:00",
		Adults:       10,
		Children:     2,
		Status:       models.StatusConfirmed,
	}
}

func TestGenerateContractExample(t *testing.T) {
	doc, err := GenerateContract(sampleBooking(), DefaultPricingConfig(), fixedNow)
	if err != nil {
		t.Fatalf("GenerateContract error: %v", err)
	}
	for _, want := range []string{
		"CONTRATANTE: MARIA DA SILVA",
		"Endereço: RUA DAS FLORES, 10",
		"Local: CHÁCARA RECANTO, KM 5",
		"Data: 24/12/2025",
		"Horário: 19:00 às 22:00",
		"• Adultos: 10 pessoas",
		"• Crianças (5-9 anos): 2 pessoas",
		"• Total: 12 pessoas",
		"VALOR TOTAL DO SERVIÇO: R$ 604,00",
		"Entrada (40%): R$ 241,60",
		"Restante: R$ 362,40",
		"R$ 300,00 a cada meia hora",
		"LONDRINA, 03/11/2025",
	} {
		if !strings.Contains(doc.Body, want) {
			t.Errorf("contract missing %q", want)
		}
	}
	if doc.Kind != models.KindContract || doc.Filename != "contrato_Maria_da_Silva.txt" {
		t.Fatalf("unexpected metadata: %s %s", doc.Kind, doc.Filename)
	}
}

func TestGenerateContractEndTimeWrapsMidnight(t *testing.T) {
	b := sampleBooking()
	b.EventTime = "22:30:00"
	doc, err := GenerateContract(b, DefaultPricingConfig(), fixedNow)
	if err != nil {
		t.Fatalf("GenerateContract error: %v", err)
	}
	if !strings.Contains(doc.Body, "Horário: 22:30 às 01:30") {
		t.Fatalf("end time not wrapped:\n%s", doc.Body)
	}
}

func TestGenerateReceiptExample(t *testing.T) {
	doc, err := GenerateReceipt(sampleBooking(), DefaultPricingConfig(), fixedNow)
	if err != nil {
		t.Fatalf("GenerateReceipt error: %v", err)
	}
	for _, want := range []string{
		"RECIBO Nº: ABCDEF12",
		"Recebemos de: Maria da Silva",
		"A importância de: R$ 241,60",
		"(duzentos e quarenta e um reais e sessenta centavos)",
		"• Pessoas: 10 adultos e 2 crianças",
		"• Saldo restante: R$ 362,40",
		"Data de emissão: 03/11/2025",
	} {
		if !strings.Contains(doc.Body, want) {
			t.Errorf("receipt missing %q", want)
		}
	}
}

func TestGenerateReceiptOmitsChildrenWhenNone(t *testing.T) {
	b := sampleBooking()
	b.Children = 0
	doc, err := GenerateReceipt(b, DefaultPricingConfig(), fixedNow)
	if err != nil {
		t.Fatalf("GenerateReceipt error: %v", err)
	}
	if !strings.Contains(doc.Body, "• Pessoas: 10 adultos\n") {
		t.Fatalf("children clause should be omitted:\n%s", doc.Body)
	}
}

func TestGenerateDocumentsWithMissingFields(t *testing.T) {
	contract, err := GenerateContract(models.Booking{}, PricingConfig{}, fixedNow)
	if err != nil {
		t.Fatalf("GenerateContract error: %v", err)
	}
	for _, want := range []string{
		"• Crianças (5-9 anos): 0 pessoas",
		"Horário:  às \n",
		"R$ 0,00",
	} {
		if !strings.Contains(contract.Body, want) {
			t.Errorf("contract missing %q", want)
		}
	}

	receipt, err := GenerateReceipt(models.Booking{}, PricingConfig{}, fixedNow)
	if err != nil {
		t.Fatalf("GenerateReceipt error: %v", err)
	}
	if !strings.Contains(receipt.Body, "(zero reais)") {
		t.Errorf("receipt should spell out zero:\n%s", receipt.Body)
	}

	b := models.Booking{EventDate: "amanhã", EventTime: "amanhã"}
	contract, err = GenerateContract(b, PricingConfig{}, fixedNow)
	if err != nil {
		t.Fatalf("GenerateContract error: %v", err)
	}
	for _, want := range []string{"Data: amanhã", "Horário: amanhã às amanhã"} {
		if !strings.Contains(contract.Body, want) {
			t.Errorf("contract missing %q", want)
		}
	}
	receipt, err = GenerateReceipt(b, PricingConfig{}, fixedNow)
	if err != nil {
		t.Fatalf("GenerateReceipt error: %v", err)
	}
	if !strings.Contains(receipt.Body, "• Data: amanhã") || !strings.Contains(receipt.Body, "• Horário: amanhã") {
		t.Errorf("receipt should echo unparsable date and time:\n%s", receipt.Body)
	}
}

func TestGenerateDocumentsAreIdempotent(t *testing.T) {
	b := sampleBooking()
	cfg := DefaultPricingConfig()
	first, _ := GenerateContract(b, cfg, fixedNow)
	second, _ := GenerateContract(b, cfg, fixedNow.Add(2*time.Hour))
	if first.Body != second.Body {
		t.Fatalf("same day generation should be identical")
	}
	r1, _ := GenerateReceipt(b, cfg, fixedNow)
	r2, _ := GenerateReceipt(b, cfg, fixedNow)
	if r1.Body != r2.Body {
		t.Fatalf("receipt generation should be identical")
	}
}

func TestReceiptNumber(t *testing.T) {
	cases := map[string]string{
		"abcdef1234567890": "ABCDEF12",
		"ab12":             "AB12",
		"":                 "",
	}
	for in, want := range cases {
		if got := ReceiptNumber(in); got != want {
			t.Errorf("ReceiptNumber(%q) = %q, want %q", in, got, want)
		}
	}
}
