package handlers

import (
	"net/http"
	"strings"

	"pizzahouse/internal/domain"
	"pizzahouse/internal/domain/models"
	"pizzahouse/internal/http/middleware"
	"pizzahouse/internal/services"

	"github.com/gin-gonic/gin"
)

// bookingView is a booking with its current price, as shown in the admin list.
type bookingView struct {
	models.Booking
	Price   services.PriceBreakdown `json:"preco"`
	Summary string                  `json:"resumo_valor"`
}

// POST /api/bookings (public quote form)
func (h *Handler) CreateBooking(c *gin.Context) {
	var in models.BookingInput
	if !BindJSONOrError(c, &in) {
		return
	}
	b, err := h.Bookings.Create(c.Request.Context(), middleware.GetRequestID(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Orçamento enviado com sucesso! Entraremos em contato em breve.",
		"id":      b.ID,
		"status":  b.Status,
	})
}

// GET /api/admin/bookings?status=&month=
func (h *Handler) ListBookings(c *gin.Context) {
	f := models.BookingFilter{Month: strings.TrimSpace(c.Query("month"))}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st, ok := models.ParseBookingStatus(raw)
		if !ok {
			RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "status inválido"})
			return
		}
		f.Status = st
	}

	list, err := h.Bookings.List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.respondBookingViews(c, list)
}

// GET /api/admin/bookings/confirmed (document screen picker)
func (h *Handler) ListConfirmedBookings(c *gin.Context) {
	list, err := h.Bookings.ListConfirmed(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.respondBookingViews(c, list)
}

func (h *Handler) respondBookingViews(c *gin.Context, list []models.Booking) {
	cfg := services.LoadPricing(c.Request.Context(), h.Docs.Settings, h.Log)
	out := make([]bookingView, 0, len(list))
	for _, b := range list {
		p := services.CalculatePrice(b.Adults, b.Children, cfg)
		out = append(out, bookingView{Booking: b, Price: p, Summary: services.QuoteSummary(p)})
	}
	c.JSON(http.StatusOK, gin.H{"data": out, "total": len(out)})
}

// GET /api/admin/bookings/stats?month=YYYY-MM
func (h *Handler) BookingStats(c *gin.Context) {
	stats, err := h.Bookings.Stats(c.Request.Context(), strings.TrimSpace(c.Query("month")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/admin/bookings/:id
func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.Bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	cfg := services.LoadPricing(c.Request.Context(), h.Docs.Settings, h.Log)
	p := services.CalculatePrice(b.Adults, b.Children, cfg)
	c.JSON(http.StatusOK, bookingView{Booking: b, Price: p, Summary: services.QuoteSummary(p)})
}

// PUT /api/admin/bookings/:id (PATCH semantics)
func (h *Handler) UpdateBooking(c *gin.Context) {
	var upd models.BookingUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}
	b, err := h.Bookings.Update(c.Request.Context(), middleware.GetRequestID(c), c.Param("id"), upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

type statusRequest struct {
	Status string `json:"status"`
}

// PUT /api/admin/bookings/:id/status
func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	b, err := h.Bookings.UpdateStatus(c.Request.Context(), middleware.GetRequestID(c), c.Param("id"), req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DELETE /api/admin/bookings/:id
func (h *Handler) DeleteBooking(c *gin.Context) {
	if err := h.Bookings.Delete(c.Request.Context(), middleware.GetRequestID(c), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
