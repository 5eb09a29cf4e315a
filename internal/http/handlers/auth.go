package handlers

import (
	"net/http"

	"pizzahouse/internal/http/middleware"
	"pizzahouse/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.LogEvent(h.Log, middleware.GetRequestID(c), "auth", "login_failed", zap.String("email", req.Email))
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(h.Log, middleware.GetRequestID(c), "auth", "login", zap.String("user_id", res.User.UserID))
	c.JSON(http.StatusOK, res)
}

// GET /api/admin/me
func (h *Handler) Me(c *gin.Context) {
	auth, ok := middleware.GetAuth(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "autenticação necessária", nil)
		return
	}
	c.JSON(http.StatusOK, auth)
}
