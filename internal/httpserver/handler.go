package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trial-monitor/internal/model"
	monitorHTTP "trial-monitor/internal/monitor/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.Trace())
	srv.gin.Use(srv.mw.BodyLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.gin.Use(gin.Logger())
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.mw.TelegramSecret(), srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	if srv.monitorHandler != nil {
		monitorHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), srv.monitorHandler, srv.mw)
		srv.l.Infof(ctx, "Monitor routes registered under /api/v1/monitor")
	}

	// Test endpoints stay out of production.
	if srv.testHandler != nil && srv.environment != string(model.EnvironmentProduction) {
		tg := srv.gin.Group("/test")
		tg.POST("/message", srv.testHandler.HandleTestMessage)
		tg.POST("/reset", srv.testHandler.HandleResetSession)
		tg.GET("/health", srv.testHandler.HandleHealthCheck)
		srv.l.Infof(ctx, "Test routes registered under /test")
	}

	return nil
}
