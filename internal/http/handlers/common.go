package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"pizzahouse/internal/http/middleware"
	"pizzahouse/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler holds the services behind every route.
type Handler struct {
	Bookings services.BookingService
	Docs     services.DocsService
	Settings services.SettingsService
	Pizzas   services.PizzaService
	Auth     services.AuthService
	Log      *zap.Logger
}

// docs returns a DocsService tagged with the current request id.
func (h *Handler) docs(c *gin.Context) services.DocsService {
	svc := h.Docs
	svc.RequestID = middleware.GetRequestID(c)
	return svc
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "empty_body", "corpo da requisição vazio", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "payload inválido", err.Error())
		return false
	}
	return true
}

func queryInt(c *gin.Context, key string, fallback int) (int, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func wantsDownload(c *gin.Context) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query("download"))) {
	case "1", "true", "yes", "sim":
		return true
	default:
		return false
	}
}
