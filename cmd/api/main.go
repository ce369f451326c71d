package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trial-monitor/config"
	_ "trial-monitor/docs" // Swagger docs
	"trial-monitor/internal/conversation"
	"trial-monitor/internal/httpserver"
	"trial-monitor/internal/middleware"
	monitorHTTP "trial-monitor/internal/monitor/delivery/http"
	tgDelivery "trial-monitor/internal/monitor/delivery/telegram"
	"trial-monitor/internal/monitor/repository/memory"
	"trial-monitor/internal/monitor/usecase"
	"trial-monitor/internal/router"
	"trial-monitor/internal/test"
	"trial-monitor/pkg/llmprovider"
	"trial-monitor/pkg/log"
	"trial-monitor/pkg/telegram"
)

// @title       Clinical Trial Monitor API
// @description Routes clinical trial monitoring requests to LLM backed reviews over Telegram and HTTP.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Clinical Trial Monitor...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	oracle, skipped, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
	for _, e := range skipped {
		logger.Warnf(ctx, "LLM provider skipped: %v", e)
	}
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	logger.Infof(ctx, "LLM providers (in priority order): %v", oracle.Providers())

	// 4. Monitor domain
	ucCfg, err := usecase.ConfigFrom(cfg.Generation, cfg.Monitor)
	if err != nil {
		logger.Errorf(ctx, "Invalid monitor config: %v", err)
		return
	}
	history := conversation.New(cfg.Monitor.HistoryWindow)
	requestLog := memory.New(cfg.Monitor.RequestLogSize, logger)
	monitorUC := usecase.New(logger, router.New(logger), oracle, requestLog, history, ucCfg)

	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.RateLimit.PerMin,
		TelegramSecret:  cfg.Telegram.SecretToken,
		MaxBodyBytes:    cfg.HTTPServer.MaxBodyBytes,
	})

	// 5. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, monitorUC, bot, mw.Limiter())

		if webhookURL := resolveWebhookURL(ctx, logger, cfg.Telegram.WebhookURL); webhookURL != "" {
			if whErr := bot.SetWebhook(ctx, webhookURL, cfg.Telegram.SecretToken); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		TelegramHandler: telegramHandler,
		MonitorHandler:  monitorHTTP.New(logger, monitorUC),
		TestHandler:     test.New(logger, monitorUC),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
