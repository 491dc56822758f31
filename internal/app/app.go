package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/example/job-board/internal/backend"
	"github.com/example/job-board/internal/cache"
	"github.com/example/job-board/internal/config"
	"github.com/example/job-board/internal/events"
	"github.com/example/job-board/internal/logging"
	"github.com/example/job-board/internal/repository"
	"github.com/example/job-board/internal/service"
	"github.com/example/job-board/internal/telemetry"
	transport "github.com/example/job-board/internal/transport/http"
)

// Module wires the whole process. The posting store is selected once while
// the graph is built, before any OnStart hook opens the listener.
var Module = fx.Options(
	fx.Provide(
		config.Load,
		newLogger,
		newSelection,
		newStore,
		newCache,
		service.NewPostService,
		transport.NewRouter,
		newHTTPServer,
		events.Connect,
		events.NewSubscriber,
	),
	fx.Invoke(
		initTracer,
		registerHTTPServer,
		func(s *events.Subscriber, lc fx.Lifecycle) error {
			return s.RegisterSubscriptions(lc)
		},
	),
)

// EventLogger routes fx's own lifecycle events through zap.
var EventLogger = fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: l}
})

func newLogger(lc fx.Lifecycle, cfg *config.Config) *zap.Logger {
	logger := logging.New(cfg.LogLevel)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
	return logger
}

func newSelection(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*backend.Selection, error) {
	sel, err := backend.Select(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("posting store selected",
		zap.String("backend", sel.Backend()),
		zap.Bool("degraded", sel.Degraded))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return sel.Store.Close()
		},
	})
	return sel, nil
}

func newStore(sel *backend.Selection) repository.PostingStore {
	return sel.Store
}

// newCache falls back to no caching when Redis does not answer at startup.
func newCache(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) cache.Cache {
	c := cache.New(cfg)
	if r, ok := c.(*cache.RedisClient); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := r.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, caching disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
			_ = r.Close()
			return cache.Noop{}
		}
		logger.Info("redis cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return c.Close()
		},
	})
	return c
}

func initTracer(lc fx.Lifecycle, cfg *config.Config) error {
	shutdown, err := telemetry.InitTracer(context.Background(), telemetry.ServiceName, cfg.OTELCollectorURL)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{OnStop: shutdown})
	return nil
}

func newHTTPServer(cfg *config.Config, router transport.Router) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerHTTPServer(lc fx.Lifecycle, srv *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			logger.Info("shutting down HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
