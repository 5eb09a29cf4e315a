package api

import (
	stdhttp "net/http"

	intconfig "pizzahouse/internal/config"
	h "pizzahouse/internal/http/handlers"
	"pizzahouse/internal/http/middleware"
	"pizzahouse/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(env intconfig.Env, hd *h.Handler, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "rota não encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		api.POST("/auth/login", hd.Login)
		api.POST("/bookings", hd.CreateBooking)
		api.GET("/pizzas", hd.ListMenu)
		api.GET("/pricing/quote", hd.Quote)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(hd.Auth, services.BearerToken))
		{
			admin.GET("/me", hd.Me)
			admin.GET("/routes", h.Routes)

			bookings := admin.Group("/bookings")
			bookings.GET("", hd.ListBookings)
			bookings.GET("/stats", hd.BookingStats)
			bookings.GET("/confirmed", hd.ListConfirmedBookings)
			bookings.GET("/:id", hd.GetBooking)
			bookings.PUT("/:id", hd.UpdateBooking)
			bookings.DELETE("/:id", hd.DeleteBooking)
			bookings.PUT("/:id/status", hd.UpdateBookingStatus)
			bookings.GET("/:id/contract", hd.GetContract)
			bookings.GET("/:id/contract.pdf", hd.GetContractPDF)
			bookings.GET("/:id/receipt", hd.GetReceipt)
			bookings.GET("/:id/receipt.pdf", hd.GetReceiptPDF)

			documents := admin.Group("/documents")
			documents.GET("", hd.ListDocuments)
			documents.POST("", hd.RecordDocument)

			admin.GET("/settings/pricing", hd.GetPricing)
			admin.PUT("/settings/pricing", hd.UpdatePricing)

			pizzas := admin.Group("/pizzas")
			pizzas.GET("", hd.ListPizzas)
			pizzas.POST("", hd.CreatePizza)
			pizzas.PUT("/:id", hd.UpdatePizza)
			pizzas.DELETE("/:id", hd.DeletePizza)
		}
	}

	h.SetRouter(r)
	return r
}
