// Package app wires configuration, storage, logging and the SDK client
// into a ready application instance.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/time/rate"

	"github.com/studia-cl/studia-mobile/pkg/credstore"
	sqlitestore "github.com/studia-cl/studia-mobile/pkg/credstore/drivers/sqlite"
	"github.com/studia-cl/studia-mobile/pkg/cryptox"
	"github.com/studia-cl/studia-mobile/pkg/slogx"
	"github.com/studia-cl/studia-mobile/pkg/studiasdk"
)

// Version is stamped at build time.
var Version = "dev"

// App holds the wired application components.
type App struct {
	Config  Config
	Logger  *slog.Logger
	Store   credstore.Store
	Client  *studiasdk.Client
	Session *studiasdk.SessionManager

	closer func() error
}

// New builds an App from config: logger, credential store (sealed file or
// sqlite), API client and session manager.
func New(cfg Config) (*App, error) {
	logger := slogx.New(slogx.Config{
		Service: "studia",
		Version: Version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	store, closer, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	opts := []studiasdk.Option{
		studiasdk.WithLogger(logger),
		studiasdk.WithTimeout(cfg.Timeout),
	}
	if cfg.Tenant != "" {
		opts = append(opts, studiasdk.WithDefaultTenant(cfg.Tenant))
	}
	if cfg.RatePerSecond > 0 {
		opts = append(opts, studiasdk.WithLimiter(
			rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RatePerSecond),
		))
	}

	client := studiasdk.New(cfg.BaseURL, store, opts...)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Client:  client,
		Session: studiasdk.NewSessionManager(client, logger),
		closer:  closer,
	}, nil
}

// Close releases store resources.
func (a *App) Close() error {
	if a.closer != nil {
		return a.closer()
	}
	return nil
}

func openStore(cfg Config) (credstore.Store, func() error, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("app: create data dir: %w", err)
	}

	switch cfg.StoreDriver {
	case "sqlite":
		store, err := sqlitestore.Open(filepath.Join(cfg.DataDir, "credentials.db"))
		if err != nil {
			return nil, nil, err
		}
		if err := store.ApplyMigrations(); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("app: migrate credential store: %w", err)
		}
		return store, store.Close, nil

	case "file", "":
		key, err := cryptox.LoadOrCreateKey(filepath.Join(cfg.DataDir, "device.key"))
		if err != nil {
			return nil, nil, err
		}
		sealer, err := cryptox.NewSealer(key)
		if err != nil {
			return nil, nil, err
		}
		store, err := credstore.NewFileStore(
			filepath.Join(cfg.DataDir, "credentials.json"),
			credstore.WithSealer(sealer),
		)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil

	default:
		return nil, nil, fmt.Errorf("app: unknown store driver %q", cfg.StoreDriver)
	}
}
