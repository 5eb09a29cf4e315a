package services

import (
	"strings"

	"pizzahouse/internal/utils"

	"github.com/shopspring/decimal"
)

// Setting keys read from the configuracoes table.
const (
	SettingAdultPrice     = "valor_adulto"
	SettingChildPrice     = "valor_crianca"
	SettingDepositPercent = "percentual_entrada"
)

var (
	defaultAdultPrice     = decimal.RequireFromString("55.00")
	defaultChildPrice     = decimal.RequireFromString("27.00")
	defaultDepositPercent = decimal.NewFromInt(40)

	hundred = decimal.NewFromInt(100)
)

// PricingConfig is the typed view of the pricing settings.
type PricingConfig struct {
	AdultPrice     decimal.Decimal `json:"valor_adulto"`
	ChildPrice     decimal.Decimal `json:"valor_crianca"`
	DepositPercent decimal.Decimal `json:"percentual_entrada"`
}

// DefaultPricingConfig: R$ 55,00 per adult, R$ 27,00 per child, 40% deposit.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		AdultPrice:     defaultAdultPrice,
		ChildPrice:     defaultChildPrice,
		DepositPercent: defaultDepositPercent,
	}
}

// PricingConfigFromSettings builds the config from the raw key/value settings.
// Every key falls back to its default on its own when it is missing, blank,
// unparsable or negative; this is the policy, not an error path.
func PricingConfigFromSettings(settings map[string]string) PricingConfig {
	cfg := DefaultPricingConfig()
	cfg.AdultPrice = settingOr(settings, SettingAdultPrice, cfg.AdultPrice)
	cfg.ChildPrice = settingOr(settings, SettingChildPrice, cfg.ChildPrice)
	cfg.DepositPercent = settingOr(settings, SettingDepositPercent, cfg.DepositPercent)
	if cfg.DepositPercent.GreaterThan(hundred) {
		cfg.DepositPercent = hundred
	}
	return cfg
}

// Settings renders the config back into storable key/value pairs.
func (c PricingConfig) Settings() map[string]string {
	return map[string]string{
		SettingAdultPrice:     c.AdultPrice.StringFixed(2),
		SettingChildPrice:     c.ChildPrice.StringFixed(2),
		SettingDepositPercent: c.DepositPercent.String(),
	}
}

func settingOr(settings map[string]string, key string, fallback decimal.Decimal) decimal.Decimal {
	raw, ok := settings[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	v, err := utils.ParseDecimal(raw)
	if err != nil || v.IsNegative() {
		return fallback
	}
	return v
}

// PriceBreakdown is the computed price of an event.
// Deposit is rounded to centavos and Balance is derived from it,
// so Deposit + Balance == Total holds exactly.
type PriceBreakdown struct {
	Adults   int             `json:"adultos"`
	Children int             `json:"criancas"`
	Guests   int             `json:"total_pessoas"`
	Config   PricingConfig   `json:"config"`
	Total    decimal.Decimal `json:"valor_total"`
	Deposit  decimal.Decimal `json:"valor_entrada"`
	Balance  decimal.Decimal `json:"valor_restante"`
}

// CalculatePrice prices an event. Negative head-counts count as zero.
func CalculatePrice(adults, children int, cfg PricingConfig) PriceBreakdown {
	adults = max(adults, 0)
	children = max(children, 0)

	total := cfg.AdultPrice.Mul(decimal.NewFromInt(int64(adults))).
		Add(cfg.ChildPrice.Mul(decimal.NewFromInt(int64(children))))
	deposit := total.Mul(cfg.DepositPercent).Div(hundred).Round(2)

	return PriceBreakdown{
		Adults:   adults,
		Children: children,
		Guests:   adults + children,
		Config:   cfg,
		Total:    total,
		Deposit:  deposit,
		Balance:  total.Sub(deposit),
	}
}
