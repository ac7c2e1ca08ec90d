package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-brain/internal/channel"
	"ai-brain/internal/message"
	"ai-brain/internal/status"
	"ai-brain/internal/webhook"
	"ai-brain/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Slack ingestion
	webhookHandler *webhook.Handler

	// Dashboard API
	messageUC     message.UseCase
	channelUC     channel.UseCase
	statusChecker *status.Checker
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	WebhookHandler *webhook.Handler
	MessageUC      message.UseCase
	ChannelUC      channel.UseCase
	StatusChecker  *status.Checker
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		webhookHandler: cfg.WebhookHandler,
		messageUC:      cfg.MessageUC,
		channelUC:      cfg.ChannelUC,
		statusChecker:  cfg.StatusChecker,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
