package middleware

import (
	pkgLog "trial-monitor/pkg/log"
)

// Config holds the settings the middlewares need.
type Config struct {
	RateLimitPerMin int
	TelegramSecret  string
	// MaxBodyBytes caps request bodies. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

type Middleware struct {
	l              pkgLog.Logger
	limiter        *RateLimiter
	telegramSecret string
	maxBodyBytes   int64
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	if l == nil {
		l = pkgLog.NewNop()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return Middleware{
		l:              l,
		limiter:        NewRateLimiter(cfg.RateLimitPerMin),
		telegramSecret: cfg.TelegramSecret,
		maxBodyBytes:   cfg.MaxBodyBytes,
	}
}

// Limiter exposes the shared per-sender limiter to handlers that only learn
// the sender after decoding the body.
func (m Middleware) Limiter() *RateLimiter {
	return m.limiter
}
