package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "pizzahouse/internal/config"
	intdb "pizzahouse/internal/db"
	"pizzahouse/internal/events"
	router "pizzahouse/internal/http"
	"pizzahouse/internal/http/handlers"
	"pizzahouse/internal/repositories"
	"pizzahouse/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	logger, err := intconfig.NewLogger(env.LogPath, env.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(env, logger); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(env intconfig.Env, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := intconfig.ConnectDB(ctx, env)
	if err != nil {
		return err
	}
	defer intconfig.CloseDB()
	logger.Info("database connected", zap.String("host", env.DBHost), zap.String("name", env.DBName))

	if err := intdb.EnsureSchema(ctx, db, logger); err != nil {
		return err
	}

	bus := events.NewBus()
	defer bus.Close()

	bookingRepo := repositories.BookingRepository{DB: db}
	settingsRepo := repositories.SettingsRepository{DB: db}

	auth := services.AuthService{
		Users:  repositories.AdminUserRepository{DB: db},
		Secret: []byte(env.JWTSecret),
		Expiry: time.Duration(env.JWTExpiryHours) * time.Hour,
		Log:    logger,
	}
	if _, err := auth.SeedAdmin(ctx, env.AdminEmail, env.AdminPassword, env.AdminName); err != nil {
		return err
	}

	hd := &handlers.Handler{
		Bookings: services.BookingService{
			Bookings: bookingRepo,
			Events:   events.NewBookingPublisher(bus.Publisher()),
			Log:      logger,
		},
		Docs: services.DocsService{
			Bookings:  bookingRepo,
			Settings:  settingsRepo,
			Documents: repositories.DocumentRepository{DB: db},
			Log:       logger,
		},
		Settings: services.SettingsService{Settings: settingsRepo, Log: logger},
		Pizzas:   services.PizzaService{Pizzas: repositories.PizzaRepository{DB: db}, Log: logger},
		Auth:     auth,
		Log:      logger,
	}

	notifier, err := events.NewNotifier(ctx, logger, bus.Subscriber())
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           router.NewRouter(env, hd, logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return notifier.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
