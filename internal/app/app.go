package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/folio/internal/config"
	"github.com/MrSnakeDoc/folio/internal/httpserver"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/portfolio"
	"github.com/MrSnakeDoc/folio/internal/redis"
	"github.com/MrSnakeDoc/folio/internal/store"
	"github.com/MrSnakeDoc/folio/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/folio/internal/store/redis"
	"github.com/MrSnakeDoc/folio/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *httpserver.Server
	store  store.Store
}

func New() (*App, error) {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	st, err := openStore(cfg, loggerClient)
	if err != nil {
		return nil, err
	}

	svc := portfolio.NewService(st, loggerClient)

	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		Service:      svc,
		StoreBackend: cfg.Store,
		APIMessage:   cfg.APIMessage,
		MaxBodyBytes: cfg.MaxBodyBytes,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
	}

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		server: httpserver.New(cfg, loggerClient, d),
		store:  st,
	}, nil
}

// openStore connects the configured backend. Redis is dialled once here,
// fail fast if it never answers.
func openStore(cfg *config.Config, log logger.Logger) (store.Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		log.Warn("using in-memory store, data is lost on restart")
		return memory.New(), nil

	case config.StoreRedis:
		log.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.Connect(context.Background(), redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		log.Info("Redis initialized successfully", logger.String("key_prefix", cfg.KeyPrefix))
		return redisstore.NewStore(client, cfg.KeyPrefix), nil
	}

	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}

func (a *App) Run() error {
	a.logger.Infof("Starting portfolio API %s on %s (commit=%s, built=%s, go=%s)",
		version.Version, a.cfg.ListenPort, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to stop server: %w", err)
	}

	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close store", logger.Error(err))
	} else {
		a.logger.Info("store closed cleanly", logger.String("backend", a.cfg.Store))
	}

	_ = a.logger.Sync()
	return runErr
}
