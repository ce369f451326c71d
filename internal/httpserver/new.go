package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"trial-monitor/internal/middleware"
	monitorHTTP "trial-monitor/internal/monitor/delivery/http"
	tgDelivery "trial-monitor/internal/monitor/delivery/telegram"
	"trial-monitor/internal/test"
	"trial-monitor/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Monitor domain
	telegramHandler tgDelivery.Handler
	monitorHandler  monitorHTTP.Handler

	// Test domain
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Middleware

	// Monitor domain
	TelegramHandler tgDelivery.Handler
	MonitorHandler  monitorHTTP.Handler

	// Test domain
	TestHandler test.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: shutdownTimeout,
		mw:              cfg.Middleware,
		telegramHandler: cfg.TelegramHandler,
		monitorHandler:  cfg.MonitorHandler,
		testHandler:     cfg.TestHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
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
