// Package tenant provisions isolated child-bot databases: one sqlite file per
// registered bot token, migrated to the same schema as the primary store.
package tenant

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	coredatabase "github.com/KNset/blog-bot/core/database"
	"github.com/KNset/blog-bot/core/logger"
	"github.com/KNset/blog-bot/internal/storage"
	"log/slog"
)

// Registry is the slice of the persistence gateway that records child bots.
type Registry interface {
	RegisterChildBot(ctx context.Context, token string, adminID int64, dbPath string) (bool, error)
	GetChildBotByToken(ctx context.Context, token string) (storage.ChildBot, error)
}

// Provisioner creates tenant databases under a configured directory.
type Provisioner struct {
	dir      string
	registry Registry
	database coredatabase.Config

	// Overridable for tests; default to the shared database helpers.
	connect func(coredatabase.Config) error
	migrate func(coredatabase.Config) error
}

// New builds a Provisioner writing tenant databases under dir. The pool and
// pragma settings are inherited from the primary store configuration.
func New(dir string, registry Registry, dbCfg coredatabase.Config) *Provisioner {
	return &Provisioner{
		dir:      dir,
		registry: registry,
		database: dbCfg,
		connect: func(cfg coredatabase.Config) error {
			db, err := coredatabase.Connect(cfg)
			if err != nil {
				return err
			}
			return db.Close()
		},
		migrate: coredatabase.RunMigrations,
	}
}

// Provision registers the token and creates its migrated tenant database.
// Returns (bot, false, nil) when the token is already registered; the
// existing registration is returned untouched.
func (p *Provisioner) Provision(ctx context.Context, token string, adminID int64) (storage.ChildBot, bool, error) {
	if existing, err := p.registry.GetChildBotByToken(ctx, token); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return storage.ChildBot{}, false, err
	}

	dbPath := filepath.Join(p.dir, tenantName(token)+".db")

	cfg := p.database
	cfg.Path = dbPath
	if err := p.connect(cfg); err != nil {
		return storage.ChildBot{}, false, fmt.Errorf("tenant db create: %w", err)
	}
	if err := p.migrate(cfg); err != nil {
		return storage.ChildBot{}, false, fmt.Errorf("tenant db migrate: %w", err)
	}

	added, err := p.registry.RegisterChildBot(ctx, token, adminID, dbPath)
	if err != nil {
		return storage.ChildBot{}, false, err
	}
	if !added {
		// Lost a race with a concurrent registration of the same token.
		existing, err := p.registry.GetChildBotByToken(ctx, token)
		return existing, false, err
	}

	logger.LogEvent(ctx, logger.SVCBots, slog.LevelInfo, "tenant.provision",
		slog.String("status", "ok"),
		slog.Int64("admin_id", adminID),
		slog.String("db_path", dbPath),
	)

	bot, err := p.registry.GetChildBotByToken(ctx, token)
	if err != nil {
		return storage.ChildBot{}, false, err
	}
	return bot, true, nil
}

// tenantName derives a filesystem-safe name from a bot token. Telegram tokens
// look like "<bot id>:<secret>"; only the bot id part names the file so the
// secret never lands on disk as a filename.
func tenantName(token string) string {
	name := token
	if i := strings.IndexByte(token, ':'); i >= 0 {
		name = token[:i]
	}
	var b strings.Builder
	for _, r := range name {
		if r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "bot"
	}
	return b.String()
}
