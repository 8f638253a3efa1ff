package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appLogger "github.com/FACorreiaa/go-vibe-navigator/app/logger"
	"github.com/FACorreiaa/go-vibe-navigator/app/observability/metrics"
	"github.com/FACorreiaa/go-vibe-navigator/app/tracer"
	"github.com/FACorreiaa/go-vibe-navigator/config"
	"github.com/FACorreiaa/go-vibe-navigator/internal/client"
	"github.com/FACorreiaa/go-vibe-navigator/internal/conversation"
	"github.com/FACorreiaa/go-vibe-navigator/internal/results"
	"github.com/FACorreiaa/go-vibe-navigator/internal/session"
	"github.com/FACorreiaa/go-vibe-navigator/internal/types"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := tracer.InitTracingAndMetrics(); err != nil {
		logger.Error("Failed to initialize observability", slog.Any("error", err))
		os.Exit(1)
	}
	metrics.InitAppMetrics()

	// --- Ops endpoint (metrics + health) ---
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/health"))
	router.Handle("/metrics", promhttp.Handler())

	opsAddr := fmt.Sprintf(":%s", cfg.Handlers.Prometheus.Port)
	opsSrv := &http.Server{
		Addr:         opsAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
	go func() {
		logger.Info("Starting ops endpoint", slog.String("address", opsAddr))
		if err := opsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Ops endpoint error", slog.Any("error", err))
		}
	}()

	// --- Agent client and interaction surfaces ---
	var agent client.AgentClient = client.NewHTTPAgentClient(cfg.Agent.BaseURL, cfg.Agent.Timeout, logger)
	if cfg.Search.CacheEnabled {
		agent = client.NewCachedAgentClient(agent, cfg.Search.CacheTTL, logger)
	}

	cityPolicy := conversation.DefaultCityPolicy()
	if len(cfg.Chat.SupportedCities) > 0 {
		cityPolicy.Supported = cfg.Chat.SupportedCities
	}
	if cfg.Chat.DefaultCity != "" {
		cityPolicy.Default = cfg.Chat.DefaultCity
	}

	chatSession := session.NewChatSession(agent, cityPolicy, logger)
	searchSession := session.NewSearchSession(agent, results.NewNormalizer(), logger)
	tourSession := session.NewTourSession(agent, cfg.Tour.MaxVibes, logger)

	runREPL(ctx, chatSession, searchSession, tourSession)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := opsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ops endpoint graceful shutdown failed", slog.Any("error", err))
	}
	logger.Info("Application shut down complete.")
}

func runREPL(ctx context.Context, chat *session.ChatSession, search *session.SearchSession, tour *session.TourSession) {
	fmt.Println("Vibe Navigator. Chat freely, or use /search, /filter, /tour, /quit.")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "/quit":
			return
		case strings.HasPrefix(line, "/search "):
			handleSearch(ctx, search, strings.TrimPrefix(line, "/search "))
		case strings.HasPrefix(line, "/filter "):
			printResults(search.ToggleTag(strings.TrimPrefix(line, "/filter ")))
		case strings.HasPrefix(line, "/tour "):
			handleTour(ctx, tour, strings.TrimPrefix(line, "/tour "))
		default:
			handleChat(ctx, chat, line)
		}
	}
}

func handleChat(ctx context.Context, chat *session.ChatSession, text string) {
	reply, err := chat.Send(ctx, text)
	if err != nil && reply.Content == "" {
		fmt.Println("!", err)
		return
	}
	fmt.Println(reply.Content)
	for _, source := range reply.Sources {
		fmt.Printf("  %q — review for %s\n", source.ReviewText, source.LocationName)
	}
}

func handleSearch(ctx context.Context, search *session.SearchSession, raw string) {
	found, err := search.Search(ctx, raw)
	switch {
	case errors.Is(err, session.ErrNoResults):
		fmt.Println("We don't have vibes for that yet. Try another city or category.")
		return
	case err != nil:
		fmt.Println("!", err)
		return
	}
	fmt.Println("Vibes:", strings.Join(search.Facets(), ", "))
	printResults(found)
}

func printResults(locations []types.NormalizedLocation) {
	if len(locations) == 0 {
		fmt.Println("No results match your selected vibes.")
		return
	}
	for _, loc := range locations {
		fmt.Printf("%s (%s) — %s\n", loc.Name, loc.Rating, loc.Location)
		if len(loc.Vibes) > 0 {
			fmt.Println("  ", strings.Join(loc.Vibes, " "))
		}
		fmt.Println("  ", loc.Summary)
		if len(loc.Tags) > 0 {
			fmt.Println("  tags:", strings.Join(loc.Tags, ", "))
		}
	}
}

func handleTour(ctx context.Context, tour *session.TourSession, args string) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		fmt.Println("Usage: /tour <city> <vibe,vibe,...>")
		return
	}
	tour.Clear()
	tour.SelectCity(fields[0])
	for _, vibe := range strings.Split(strings.Join(fields[1:], " "), ",") {
		if vibe = strings.TrimSpace(vibe); vibe != "" {
			tour.ToggleVibe(vibe)
		}
	}
	result, err := tour.Generate(ctx)
	if err != nil {
		fmt.Println("!", err)
		return
	}
	duration := result.Duration
	if duration == "" {
		duration = "8 Hour"
	}
	fmt.Printf("Your curated adventure (%s):\n%s\n", duration, result.Reply)
	for _, source := range result.Sources {
		author := "anonymous"
		if source.Author != nil {
			author = *source.Author
		}
		fmt.Printf("  %q — %s, %s\n", source.ReviewText, author, source.LocationName)
	}
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" {
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stderr, tintOpts))
	} else {
		// JSON logs for production or other environments
		jsonOpts := &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stderr, jsonOpts))
	}
	return logger
}
