package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chHTTP "ai-brain/internal/channel/delivery/http"
	msgHTTP "ai-brain/internal/message/delivery/http"
	"ai-brain/internal/model"
	"ai-brain/internal/status"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerWebhookRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerWebhookRoutes wires the Slack ingestion endpoint.
func (srv *HTTPServer) registerWebhookRoutes() {
	ctx := context.Background()

	if srv.webhookHandler == nil {
		srv.l.Warnf(ctx, "Slack webhook handler not configured, skipping webhook routes")
		return
	}
	srv.gin.POST("/webhook/slack", srv.webhookHandler.HandleSlackWebhook)
	srv.gin.GET("/webhook/slack", srv.webhookHandler.HandleWebhookHealth)
	srv.l.Infof(ctx, "Slack webhook routes registered at /webhook/slack")
}

// registerDomainRoutes registers the dashboard API under /api.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	if srv.messageUC != nil {
		msgHTTP.RegisterRoutes(api, msgHTTP.New(srv.l, srv.messageUC))
		srv.l.Infof(ctx, "Message routes registered at GET /api/messages")
	}

	if srv.channelUC != nil {
		chHTTP.RegisterRoutes(api, chHTTP.New(srv.l, srv.channelUC))
		srv.l.Infof(ctx, "Channel routes registered at /api/channels")
	}

	if srv.statusChecker != nil {
		api.GET("/status", status.NewHandler(srv.statusChecker).HandleStatus)
		srv.l.Infof(ctx, "Status route registered at GET /api/status")
	}
}
