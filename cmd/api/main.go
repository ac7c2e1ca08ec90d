package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"ai-brain/config"
	_ "ai-brain/docs" // Swagger docs
	chUsecase "ai-brain/internal/channel/usecase"
	"ai-brain/internal/channelconfig"
	"ai-brain/internal/httpserver"
	msgRepo "ai-brain/internal/message/repository"
	memoryRepo "ai-brain/internal/message/repository/memory"
	postgreRepo "ai-brain/internal/message/repository/postgre"
	msgUsecase "ai-brain/internal/message/usecase"
	"ai-brain/internal/status"
	"ai-brain/internal/statuscache"
	"ai-brain/internal/webhook"
	"ai-brain/pkg/log"
	"ai-brain/pkg/slackapi"
)

// @title       AI Brain API
// @description Slack message ingestion and dashboard API with signature verification, channel filtering, and deduplicated storage.
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

	logger.Info(ctx, "Starting AI Brain...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Channel config store and status cache
	channelStore := channelconfig.New()

	statusCache := statuscache.New(cfg.StatusCache.TTL, cfg.StatusCache.SweepInterval, logger)
	go statusCache.Start(ctx)
	defer statusCache.Stop()

	// 4. Message repository
	var messageRepo msgRepo.MessageRepository
	if cfg.Storage.Driver == "postgres" {
		db, dbErr := sql.Open("postgres", cfg.Storage.DSN)
		if dbErr != nil {
			logger.Errorf(ctx, "Failed to open postgres connection: %v", dbErr)
			return
		}
		defer db.Close()

		if pingErr := db.PingContext(ctx); pingErr != nil {
			logger.Errorf(ctx, "Failed to ping postgres: %v", pingErr)
			return
		}
		messageRepo = postgreRepo.New(db, logger)
		logger.Info(ctx, "Postgres message store initialized")
	} else {
		messageRepo = memoryRepo.New(logger)
		logger.Info(ctx, "In-memory message store initialized")
	}

	// 5. Message domain
	messageUC := msgUsecase.New(messageRepo, channelStore, logger)

	// 6. Slack webhook ingestion
	if cfg.Slack.SigningSecret == "" {
		logger.Warn(ctx, "SLACK_SIGNING_SECRET is empty, all webhook deliveries will be rejected")
	}
	webhookHandler := webhook.NewHandler(
		messageUC,
		webhook.SecurityConfig{
			SigningSecret:   cfg.Slack.SigningSecret,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		},
		cfg.Slack.DefaultContextID,
		logger,
	)

	// 7. Slack Web API client (optional, needed for channel listing and status probes)
	var chSlack chUsecase.SlackAPI
	var stSlack status.SlackAPI
	if cfg.Slack.BotToken != "" {
		client := slackapi.NewClient(cfg.Slack.BotToken)
		chSlack = client
		stSlack = client
		logger.Info(ctx, "Slack Web API client initialized")
	} else {
		logger.Warn(ctx, "SLACK_BOT_TOKEN is empty, channel listing and status probes degrade to local data")
	}

	// 8. Channel and status domains
	channelUC := chUsecase.New(channelStore, chSlack, logger)
	statusChecker := status.New(statusCache, stSlack, logger)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		WebhookHandler: webhookHandler,
		MessageUC:      messageUC,
		ChannelUC:      channelUC,
		StatusChecker:  statusChecker,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
