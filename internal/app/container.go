package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/kttyan/genshin-build-viewer/internal/adapter"
	"github.com/kttyan/genshin-build-viewer/internal/config"
	"github.com/kttyan/genshin-build-viewer/internal/service/cache"
	"github.com/kttyan/genshin-build-viewer/internal/service/catalog"
	"github.com/kttyan/genshin-build-viewer/internal/service/enka"
	"github.com/kttyan/genshin-build-viewer/internal/service/profile"
	"github.com/kttyan/genshin-build-viewer/internal/service/reference"
	"github.com/kttyan/genshin-build-viewer/internal/service/relay"
	"go.uber.org/zap"
)

// Container bundles assembled services for constructing runtime components like Console.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	profiles       *profile.Service
	messageAdapter *adapter.MessageAdapter
	formatter      *adapter.ResponseFormatter
	closers        []func()
}

// NewConsole wires the command set to the given input and output streams.
func (c *Container) NewConsole(in io.Reader, out io.Writer) (*Console, error) {
	if c == nil || c.profiles == nil {
		return nil, fmt.Errorf("viewer dependencies not initialized")
	}
	return NewConsole(ConsoleConfig{
		Profiles:       c.profiles,
		MessageAdapter: c.messageAdapter,
		Formatter:      c.formatter,
		In:             in,
		Out:            out,
		Logger:         c.Logger,
	}), nil
}

// Close releases the optional Redis connection.
func (c *Container) Close() {
	if c == nil {
		return
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// Build assembles the fetcher, loads the reference tables and returns a container
// capable of creating consoles. The reference load never fails the build; it only
// degrades lookups to placeholders.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	httpClient := &http.Client{}

	routes, err := relay.ParseAll(cfg.Fetch.RelayRoutes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse relay routes: %w", err)
	}

	fetcher, err := enka.NewFetcher(httpClient, enka.FetcherConfig{
		BaseURL:        cfg.Enka.BaseURL,
		UserAgent:      cfg.Enka.UserAgent,
		Routes:         routes,
		MaxRetries:     cfg.Fetch.MaxRetries,
		AttemptTimeout: cfg.Fetch.AttemptTimeout,
		RetryDelay:     cfg.Fetch.RetryDelay,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create fetcher: %w", err)
	}

	// Redis is optional and only backs the reference snapshots.
	var snapshots reference.SnapshotStore
	if cfg.Redis.Enabled() {
		cacheSvc, cacheErr := cache.NewCacheService(cache.CacheConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if cacheErr != nil {
			logger.Warn("Redis unavailable, reference snapshots disabled", zap.Error(cacheErr))
		} else {
			snapshots = cacheSvc
			closers = append(closers, func() {
				_ = cacheSvc.Close()
			})
		}
	}

	loader := reference.NewLoader(httpClient, reference.LoaderConfig{
		CharactersURL:  cfg.Reference.CharactersURL,
		LocURL:         cfg.Reference.LocURL,
		Locale:         cfg.Reference.Locale,
		FallbackLocale: cfg.Reference.FallbackLocale,
		Timeout:        cfg.Reference.Timeout,
		SnapshotTTL:    cfg.Reference.SnapshotTTL,
	}, snapshots, logger)

	tables := loader.Tables(ctx)
	logger.Info("Reference tables ready",
		zap.Int("characters", tables.CharacterCount()),
		zap.Int("texts", tables.TextCount()),
	)

	profiles := profile.NewService(fetcher, catalog.New(tables), logger)

	return &Container{
		Config:         cfg,
		Logger:         logger,
		profiles:       profiles,
		messageAdapter: adapter.NewMessageAdapter(""),
		formatter:      adapter.NewResponseFormatter(""),
		closers:        closers,
	}, nil
}
