package handlers

import (
	"net/http"

	"pizzahouse/internal/domain"
	"pizzahouse/internal/domain/models"
	"pizzahouse/internal/http/middleware"
	"pizzahouse/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/pizzas (active menu)
func (h *Handler) ListMenu(c *gin.Context) {
	list, err := h.Pizzas.Menu(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// GET /api/admin/pizzas
func (h *Handler) ListPizzas(c *gin.Context) {
	list, err := h.Pizzas.All(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// POST /api/admin/pizzas
func (h *Handler) CreatePizza(c *gin.Context) {
	var in services.PizzaInput
	if !BindJSONOrError(c, &in) {
		return
	}
	p, err := h.Pizzas.Create(c.Request.Context(), middleware.GetRequestID(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// PUT /api/admin/pizzas/:id
func (h *Handler) UpdatePizza(c *gin.Context) {
	var upd models.PizzaUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}
	p, err := h.Pizzas.Update(c.Request.Context(), middleware.GetRequestID(c), c.Param("id"), upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/admin/pizzas/:id
func (h *Handler) DeletePizza(c *gin.Context) {
	if err := h.Pizzas.Delete(c.Request.Context(), middleware.GetRequestID(c), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/admin/settings/pricing
func (h *Handler) GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, h.Settings.Pricing(c.Request.Context()))
}

// PUT /api/admin/settings/pricing
func (h *Handler) UpdatePricing(c *gin.Context) {
	var in services.PricingInput
	if !BindJSONOrError(c, &in) {
		return
	}
	cfg, err := h.Settings.UpdatePricing(c.Request.Context(), middleware.GetRequestID(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// GET /api/pricing/quote?adults=&children=
func (h *Handler) Quote(c *gin.Context) {
	adults, okA := queryInt(c, "adults", 0)
	children, okC := queryInt(c, "children", 0)
	if !okA || !okC {
		RespondDomainError(c, domain.ValidationError{Field: "quantidade", Msg: "número inválido"})
		return
	}
	p, err := h.docs(c).Quote(c.Request.Context(), adults, children)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preco": p, "resumo_valor": services.QuoteSummary(p)})
}
