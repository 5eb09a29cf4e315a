package services

import (
	"context"
	"strings"

	"pizzahouse/internal/domain"
	"pizzahouse/internal/domain/models"
	"pizzahouse/internal/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SettingsService manages the pricing keys of the configuracoes table.
type SettingsService struct {
	Settings SettingsStore
	Log      *zap.Logger
}

// PricingInput accepts "55,00" or "55.00" style values; blank keeps the current value.
type PricingInput struct {
	AdultPrice     string `json:"valor_adulto"`
	ChildPrice     string `json:"valor_crianca"`
	DepositPercent string `json:"percentual_entrada"`
}

func (s SettingsService) Pricing(ctx context.Context) PricingConfig {
	return LoadPricing(ctx, s.Settings, s.Log)
}

func (s SettingsService) UpdatePricing(ctx context.Context, requestID string, in PricingInput) (PricingConfig, error) {
	cfg := s.Pricing(ctx)
	errs := map[string]string{}

	apply := func(field, raw string, target *decimal.Decimal) {
		if strings.TrimSpace(raw) == "" {
			return
		}
		v, err := utils.ParseDecimal(raw)
		if err != nil || v.IsNegative() {
			errs[field] = "valor inválido"
			return
		}
		*target = v
	}
	apply(SettingAdultPrice, in.AdultPrice, &cfg.AdultPrice)
	apply(SettingChildPrice, in.ChildPrice, &cfg.ChildPrice)
	apply(SettingDepositPercent, in.DepositPercent, &cfg.DepositPercent)
	if cfg.DepositPercent.GreaterThan(hundred) {
		errs[SettingDepositPercent] = "deve ser entre 0 e 100"
	}
	if len(errs) > 0 {
		return PricingConfig{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	if err := s.Settings.UpsertMany(ctx, cfg.Settings()); err != nil {
		return PricingConfig{}, domain.InternalError{Msg: "falha ao salvar configurações", Err: err}
	}
	utils.LogEvent(s.Log, requestID, "settings", "update_pricing",
		zap.String(SettingAdultPrice, cfg.AdultPrice.StringFixed(2)),
		zap.String(SettingChildPrice, cfg.ChildPrice.StringFixed(2)),
		zap.String(SettingDepositPercent, cfg.DepositPercent.String()),
	)
	return cfg, nil
}

// PizzaService manages the rodízio menu.
type PizzaService struct {
	Pizzas PizzaStore
	Log    *zap.Logger
}

type PizzaInput struct {
	Name        string `json:"nome" validate:"required,min=2,max=120"`
	Ingredients string `json:"ingredientes" validate:"max=2000"`
	ImageURL    string `json:"imagem_url" validate:"omitempty,url"`
	Active      *bool  `json:"ativo"`
	Order       int    `json:"ordem" validate:"gte=0"`
	Kind        string `json:"tipo" validate:"omitempty,oneof=salgada doce"`
}

func (s PizzaService) Menu(ctx context.Context) ([]models.Pizza, error) {
	return s.Pizzas.List(ctx, true)
}

func (s PizzaService) All(ctx context.Context) ([]models.Pizza, error) {
	return s.Pizzas.List(ctx, false)
}

func (s PizzaService) Create(ctx context.Context, requestID string, in PizzaInput) (models.Pizza, error) {
	in.Name = utils.NormalizeSpace(in.Name)
	in.Ingredients = strings.TrimSpace(in.Ingredients)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	if errs := utils.ValidateStruct(in); errs != nil {
		return models.Pizza{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}
	p := models.Pizza{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Ingredients: in.Ingredients,
		ImageURL:    in.ImageURL,
		Active:      in.Active == nil || *in.Active,
		Order:       in.Order,
		Kind:        models.PizzaKind(utils.Fallback(in.Kind, string(models.PizzaSalgada))),
	}
	if err := s.Pizzas.Create(ctx, p); err != nil {
		return models.Pizza{}, domain.InternalError{Msg: "falha ao salvar pizza", Err: err}
	}
	utils.LogEvent(s.Log, requestID, "pizzas", "create", zap.String("pizza_id", p.ID))
	return p, nil
}

func (s PizzaService) Update(ctx context.Context, requestID, id string, upd models.PizzaUpdate) (models.Pizza, error) {
	if errs := utils.ValidateStruct(upd); errs != nil {
		return models.Pizza{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}
	if _, err := s.Pizzas.GetByID(ctx, id); err != nil {
		return models.Pizza{}, err
	}
	if err := s.Pizzas.Update(ctx, id, upd); err != nil {
		return models.Pizza{}, domain.InternalError{Msg: "falha ao atualizar pizza", Err: err}
	}
	utils.LogEvent(s.Log, requestID, "pizzas", "update", zap.String("pizza_id", id))
	return s.Pizzas.GetByID(ctx, id)
}

func (s PizzaService) Delete(ctx context.Context, requestID, id string) error {
	if err := s.Pizzas.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(s.Log, requestID, "pizzas", "delete", zap.String("pizza_id", id))
	return nil
}
