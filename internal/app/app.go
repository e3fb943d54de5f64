package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/auth"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/class"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/coach"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/config"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/db"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/events"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/health"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/httputil"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/leave"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/logger"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/metrics"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/middleware"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/overview"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/payment"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/student"

	"github.com/go-chi/chi/v5"
)

type App struct {
	config *config.Config
	router chi.Router
	server *http.Server
	logger *slog.Logger
}

func New() *App {
	slogLogger := logger.NewWithServiceContext(ServiceName, Version)

	// Set as default logger so slog.Info() uses the same handler
	slog.SetDefault(slogLogger)

	slogLogger.Info("initializing application")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	slogLogger.Info("config loaded", "env", cfg.Env)

	app := &App{
		config: cfg,
		router: chi.NewRouter(),
		logger: slogLogger,
	}

	m, err := metrics.New(ServiceName, slogLogger)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}

	database := db.New(cfg.Database)

	ctx := context.Background()
	if err := db.RunMigrations(ctx, database,
		(*auth.Admin)(nil),
		(*coach.Coach)(nil),
		(*student.Student)(nil),
		(*class.Class)(nil),
		(*payment.Payment)(nil),
		(*leave.LeaveRequest)(nil),
	); err != nil {
		log.Fatal("failed to run migrations:", err)
	}

	if err := m.RegisterDB(database.DB); err != nil {
		slogLogger.Warn("failed to register db pool metrics", "error", err)
	}

	// Permissive CORS and the OPTIONS preflight short-circuit apply to
	// every request, matched or not.
	app.router.Use(middleware.CORS)

	app.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondWithError(w, http.StatusNotFound, "Not found")
	})

	// Health endpoints (no auth required)
	healthHandler := health.NewHandler(Version)
	healthHandler.RegisterRoutes(app.router)

	// Repositories
	authRepo := auth.NewRepository(database, m)
	coachRepo := coach.NewRepository(database, m)
	studentRepo := student.NewRepository(database, m)
	classRepo := class.NewRepository(database, m)
	paymentRepo := payment.NewRepository(database, m)
	leaveRepo := leave.NewRepository(database, m)
	overviewRepo := overview.NewRepository(database, m)

	// NATS producer is optional; without it events are dropped
	var producer *events.Producer
	if cfg.NATS.URL != "" {
		producer, err = events.NewProducer(cfg.NATS.URL, cfg.NATS.SubjectPrefix, slogLogger)
		if err != nil {
			slogLogger.Warn("failed to initialize NATS producer", "error", err)
			producer = nil
		}
	}

	// Auth setup. A missing JWT secret is tolerable only outside production.
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		if cfg.Env == "prod" || cfg.Env == "production" {
			log.Fatal("JWT_SECRET must be set in production")
		}
		slogLogger.Warn("JWT_SECRET not set, signing tokens with the development secret")
		secret = auth.DevSecret
	}
	tokens := auth.NewTokenManager(secret)

	authService := auth.NewService(authRepo, tokens, slogLogger)
	if err := authService.EnsureDefaultAdmin(ctx); err != nil {
		slogLogger.Warn("failed to seed default admin", "error", err)
	}
	authHandler := auth.NewHandler(authService, slogLogger, m)

	coachHandler := coach.NewHandler(coach.NewService(coachRepo), slogLogger, m)
	studentHandler := student.NewHandler(student.NewService(studentRepo), slogLogger, m)
	classHandler := class.NewHandler(class.NewService(classRepo, coachRepo), slogLogger, m)
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, studentRepo, classRepo, producer, slogLogger), slogLogger, m)
	leaveHandler := leave.NewHandler(leave.NewService(leaveRepo, studentRepo, classRepo, producer, slogLogger), slogLogger, m)
	overviewHandler := overview.NewHandler(overview.NewService(overviewRepo, slogLogger), slogLogger)

	app.router.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r)

		// Everything else under /api requires a valid access token
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(slogLogger, tokens))
			overviewHandler.RegisterRoutes(r)
			coachHandler.RegisterRoutes(r)
			studentHandler.RegisterRoutes(r)
			classHandler.RegisterRoutes(r)
			paymentHandler.RegisterRoutes(r)
			leaveHandler.RegisterRoutes(r)
		})
	})

	slogLogger.Info("application initialized successfully")

	return app
}

func (a *App) Run() error {
	a.server = &http.Server{
		Addr:         fmt.Sprintf(":%s", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  time.Duration(a.config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(a.config.Server.IdleTimeout) * time.Second,
	}

	a.logger.Info("server starting", "port", a.config.Server.Port)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down server")
	return a.server.Shutdown(ctx)
}
