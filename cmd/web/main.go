package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/competency-web/internal/config"
	appHTTP "github.com/cmlabs-hris/competency-web/internal/handler/http"
	"github.com/cmlabs-hris/competency-web/internal/handler/http/response"
	"github.com/cmlabs-hris/competency-web/internal/pkg/apiclient"
	"github.com/cmlabs-hris/competency-web/internal/pkg/session"
	"github.com/cmlabs-hris/competency-web/internal/repository/rest"
	serviceAuth "github.com/cmlabs-hris/competency-web/internal/service/auth"
	competencyService "github.com/cmlabs-hris/competency-web/internal/service/competency"
	employeeService "github.com/cmlabs-hris/competency-web/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.App)
	slog.SetDefault(logger)

	api, err := apiclient.NewClient(cfg.Backend.URL, nil)
	if err != nil {
		slog.Error("Error creating backend client", "error", err)
		os.Exit(1)
	}

	views, err := response.NewRenderer()
	if err != nil {
		slog.Error("Error parsing templates", "error", err)
		os.Exit(1)
	}

	sessions := session.NewCookieStore(cfg.Session.Secret, session.CookieOptions{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.Secure,
		MaxAge: cfg.Session.MaxAge,
	})

	authRepo := rest.NewAuthRepository(api)
	competencyRepo := rest.NewCompetencyRepository(api)
	employeeRepo := rest.NewEmployeeRepository(api)

	authService := serviceAuth.NewAuthService(authRepo)
	competencySvc := competencyService.NewCompetencyService(competencyRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, competencyRepo)

	homeHandler := appHTTP.NewHomeHandler(views, sessions)
	authHandler := appHTTP.NewAuthHandler(views, sessions, authService)
	competencyHandler := appHTTP.NewCompetencyHandler(views, sessions, competencySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(views, sessions, employeeSvc)

	router := appHTTP.NewRouter(
		cfg,
		logger,
		sessions,
		homeHandler,
		authHandler,
		competencyHandler,
		employeeHandler,
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server running", "addr", srv.Addr, "backend", cfg.Backend.URL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}
