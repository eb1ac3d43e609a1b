package http

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/competency-web/internal/config"
	"github.com/cmlabs-hris/competency-web/internal/pkg/session"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// NewLogger builds the ECS-formatted JSON logger shared by request logging
// and the rest of the process.
func NewLogger(w io.Writer, app config.AppConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(app.LogLevel))); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(app.Env != "production")
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "competency-web"),
		slog.String("version", app.Version),
		slog.String("env", app.Env),
	)
}

func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	sessions session.Store,
	homeHandler HomeHandler,
	authHandler AuthHandler,
	competencyHandler CompetencyHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))
	r.Use(session.Middleware(sessions))

	r.Get("/", homeHandler.Index)

	r.Get("/login", authHandler.LoginPage)
	r.Post("/login", authHandler.Login)
	r.Get("/register", authHandler.RegisterPage)
	r.Post("/register", authHandler.Register)

	r.Route("/competencies", func(r chi.Router) {
		r.Get("/", competencyHandler.List)
		r.Get("/new", competencyHandler.NewPage)
		r.Post("/new", competencyHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Post("/update", competencyHandler.Update)
			r.Post("/delete", competencyHandler.Delete)
		})
	})

	r.Route("/employees", func(r chi.Router) {
		r.Get("/", employeeHandler.List)
		r.Get("/new", employeeHandler.NewPage)
		r.Post("/new", employeeHandler.Create)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Page not found", http.StatusNotFound)
	})

	return r
}
