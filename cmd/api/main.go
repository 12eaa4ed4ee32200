package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Harsh-gitaccount/orivanta-website/config"
	v1 "github.com/Harsh-gitaccount/orivanta-website/internal/delivery/http/v1"
	"github.com/Harsh-gitaccount/orivanta-website/internal/usecase"
	"github.com/Harsh-gitaccount/orivanta-website/pkg/email"
	"github.com/Harsh-gitaccount/orivanta-website/pkg/logger"
	"github.com/Harsh-gitaccount/orivanta-website/pkg/ratelimit"
)

const (
	serviceName    = "Orivanta Contact Form API"
	serviceVersion = "1.0.0"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact form backend", "port", cfg.Port)

	// 3. Setup Mail Transport
	transport := email.NewSMTPTransport(cfg)
	if transport.IsConfigured() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := transport.Verify(ctx); err != nil {
			logger.Log.Warn("SMTP connection verification failed", "error", err)
		} else {
			logger.Log.Info("SMTP connection verified", "host", cfg.SMTPHost)
		}
		cancel()
	} else {
		logger.Log.Warn("Email transport not fully configured - contact form will be unavailable")
	}

	// 4. Setup Rate Limiter
	limiter := newLimiter(cfg)

	// 5. Setup UseCases
	composer := email.NewComposer(cfg)
	contactUC := usecase.NewContactUsecase(composer, transport)
	healthUC := usecase.NewHealthUsecase(serviceName, serviceVersion)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Limiter:   limiter,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// newLimiter builds the rate limiter: Redis-backed when REDIS_URL is set so
// scaled-out instances share quota, otherwise in-memory and process-local.
func newLimiter(cfg *config.Config) ratelimit.Limiter {
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	if cfg.RedisURL == "" {
		logger.Log.Info("Rate limiter using in-memory store",
			"points", cfg.RateLimitPoints, "window_seconds", cfg.RateLimitWindowSeconds)
		return ratelimit.NewMemory(cfg.RateLimitPoints, window)
	}

	opts, err := goredis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Log.Warn("Invalid REDIS_URL, falling back to in-memory rate limiter", "error", err)
		return ratelimit.NewMemory(cfg.RateLimitPoints, window)
	}

	client := goredis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Log.Warn("Redis unreachable, falling back to in-memory rate limiter", "error", err)
		return ratelimit.NewMemory(cfg.RateLimitPoints, window)
	}

	logger.Log.Info("Rate limiter using Redis store",
		"points", cfg.RateLimitPoints, "window_seconds", cfg.RateLimitWindowSeconds)
	return ratelimit.NewRedis(client, cfg.RateLimitPoints, window)
}
