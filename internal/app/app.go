package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/localsession"
	"github.com/vk/gridcalc/internal/notify"
	"github.com/vk/gridcalc/internal/session"
	"golang.org/x/time/rate"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	sessions   session.SessionFactory
	publisher  notify.Publisher
	limiter    *rate.Limiter
	httpServer *http.Server
	requests   atomic.Uint64
}

// Option customizes an App at construction.
type Option func(*App)

// WithSessionFactory replaces the local evaluation engine.
func WithSessionFactory(f session.SessionFactory) Option {
	return func(a *App) { a.sessions = f }
}

// WithPublisher sets the publisher evaluated tables are pushed to, instead
// of dialing cfg.NotifyURL.
func WithPublisher(p notify.Publisher) Option {
	return func(a *App) { a.publisher = p }
}

// NewApp is the constructor for the main application. Evaluated sheets are
// written to outW and logs to logW, each App with its own isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		sessions: &localsession.SessionFactory{},
	}
	if cfg.RateLimit > 0 {
		a.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
		logger.Debug("Rate limiting enabled.", "rps", cfg.RateLimit, "burst", cfg.RateBurst)
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Context returns ctx carrying the app's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
