package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-console-core/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-console-core/internal/handler/http"
	"github.com/cmlabs-hris/hris-console-core/internal/rendering"
	"github.com/cmlabs-hris/hris-console-core/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(cfg.App.Env, cfg.App.LogLevel)
	slog.SetDefault(logger)

	lunchBreak, err := leave.ParseTimeWindow(cfg.Leave.LunchStart, cfg.Leave.LunchEnd)
	if err != nil {
		slog.Error("Invalid lunch break window", "error", err)
		os.Exit(1)
	}
	calculator := leave.NewCalculator(lunchBreak, cfg.Leave.HoursPerDay)

	htmlRenderer, err := rendering.NewHTMLRenderer()
	if err != nil {
		slog.Error("Failed to parse table template", "error", err)
		os.Exit(1)
	}

	leaveHandler := appHTTP.NewLeaveHandler(calculator)
	weeklyReportHandler := appHTTP.NewWeeklyReportHandler()
	tableHandler := appHTTP.NewTableHandler(appHTTP.TableDefaults{
		DatePattern:        cfg.Table.DatePattern,
		ProcessedDateLabel: cfg.Table.ProcessedDateLabel,
		EmptyMessage:       cfg.Table.EmptyMessage,
	}, htmlRenderer)
	uiHandler := appHTTP.NewUIHandler()

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		leaveHandler,
		weeklyReportHandler,
		tableHandler,
		uiHandler,
	)

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
		return
	}
	slog.Info("Server exited gracefully")
}
