// Package bot wires the menus, commands, callbacks and dialogues into a
// runnable Telegram application.
package bot

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	coreconfig "github.com/KNset/blog-bot/core/config"
	coredatabase "github.com/KNset/blog-bot/core/database"
	tg "github.com/KNset/blog-bot/core/telegram"
	"github.com/KNset/blog-bot/core/telegram/state"
	"github.com/KNset/blog-bot/internal/dialog"
	"github.com/KNset/blog-bot/internal/roles"
	"github.com/KNset/blog-bot/internal/storage"
	"github.com/KNset/blog-bot/internal/tenant"
)

// Config is the application configuration; currently the core configuration
// carries everything the bot needs.
type Config struct {
	Core coreconfig.Config
}

// CoreConfig exposes the embedded core configuration to the runner.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Core
}

// LoadConfig reads and normalizes the application configuration.
func LoadConfig(path string) (*Config, error) {
	core, err := coreconfig.Load(path)
	if err != nil {
		return nil, err
	}
	return &Config{Core: *core}, nil
}

// App holds the wired application.
type App struct {
	cfg    *Config
	store  *storage.Store
	roles  *roles.Resolver
	engine *dialog.Engine
	reg    *tg.Registry
}

// New wires the application around a connected and migrated database handle.
// The configured super-admin is seeded into the admin set the way the first
// initialization always did.
func New(ctx context.Context, cfg *Config, db *sqlx.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bot: nil config")
	}

	store := storage.New(db)
	resolver := roles.NewResolver(cfg.Core.Telegram.SuperAdminID, store)

	if _, err := store.AddAdmin(ctx, cfg.Core.Telegram.SuperAdminID); err != nil {
		return nil, fmt.Errorf("bot: seed super admin: %w", err)
	}

	tenantDir := cfg.Core.Storage.TenantDir
	if !filepath.IsAbs(tenantDir) {
		tenantDir = filepath.Join(filepath.Dir(cfg.Core.Storage.Path), tenantDir)
	}
	provisioner := tenant.New(tenantDir, store, coredatabase.Config{
		MaxConnections: cfg.Core.Storage.MaxConnections,
		BusyTimeoutMS:  cfg.Core.Storage.BusyTimeoutMS,
	})

	engine := dialog.New(state.NewMemoryManager(), store, provisioner)
	engine.RegisterStates()

	app := &App{
		cfg:    cfg,
		store:  store,
		roles:  resolver,
		engine: engine,
		reg:    tg.NewRegistry(),
	}
	engine.SetMenus(app)

	app.registerCommands()
	app.registerCallbacks()

	return app, nil
}
