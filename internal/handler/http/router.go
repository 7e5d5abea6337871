package http

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/cmlabs-hris/hris-console-core/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-console-core/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// NewLogger builds the JSON request logger with the ECS field names.
func NewLogger(env, level string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(env == "development")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLevel(level),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-console-core"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(opts RouterOptions, leaveHandler LeaveHandler, weeklyReportHandler WeeklyReportHandler, tableHandler TableHandler, uiHandler UIHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  slog.LevelDebug,
			Schema: httplog.SchemaECS,
		}))
	}
	r.Use(middleware.RequestID)

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/leave", func(r chi.Router) {
			r.Post("/calculate", leaveHandler.Calculate)
			r.Post("/validate", leaveHandler.Validate)
		})

		r.Route("/weekly-reports", func(r chi.Router) {
			r.Get("/week", weeklyReportHandler.Week)
			r.Post("/bulk-settings", weeklyReportHandler.ApplyBulkSettings)
			r.Post("/holiday-work", weeklyReportHandler.ToggleHolidayWork)
			r.Post("/summary", weeklyReportHandler.Summary)
		})

		r.Route("/tables", func(r chi.Router) {
			r.Post("/history", tableHandler.History)
			r.Post("/history.txt", tableHandler.HistoryText)
		})

		r.Route("/ui", func(r chi.Router) {
			r.Post("/resolve", uiHandler.Resolve)
			r.Post("/action-button", uiHandler.ActionButton)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
