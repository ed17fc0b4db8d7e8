package storage

import (
	"context"
	"fmt"

	"github.com/KNset/blog-bot/core/logger"
	"log/slog"
)

// RegisterChildBot records a provisioned tenant bot. Returns (false, nil)
// when the token is already registered.
func (s *Store) RegisterChildBot(ctx context.Context, token string, adminID int64, dbPath string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO child_bots (token, admin_id, db_path) VALUES (?, ?, ?)`,
		token, adminID, dbPath)
	if err != nil {
		logger.LogEvent(ctx, logger.SVCBots, slog.LevelError, "childbot.register",
			slog.String("status", "fail"),
			slog.Int64("admin_id", adminID),
			slog.String("err", err.Error()),
		)
		return false, fmt.Errorf("register child bot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("register child bot: %w", err)
	}
	if n == 0 {
		return false, nil
	}
	logger.LogEvent(ctx, logger.SVCBots, slog.LevelInfo, "childbot.register",
		slog.String("status", "ok"),
		slog.Int64("admin_id", adminID),
		slog.String("db_path", dbPath),
	)
	return true, nil
}

// ListChildBots returns the tenant bots owned by one admin, newest first.
func (s *Store) ListChildBots(ctx context.Context, adminID int64) ([]ChildBot, error) {
	bots := []ChildBot{}
	err := s.db.SelectContext(ctx, &bots,
		`SELECT id, token, admin_id, db_path, created_at
		   FROM child_bots WHERE admin_id = ? ORDER BY created_at DESC, id DESC`, adminID)
	if err != nil {
		logger.LogEvent(ctx, logger.SVCBots, slog.LevelError, "childbot.list",
			slog.String("status", "fail"),
			slog.Int64("admin_id", adminID),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("list child bots: %w", err)
	}
	return bots, nil
}

// GetChildBotByToken resolves a registration by its credential token.
func (s *Store) GetChildBotByToken(ctx context.Context, token string) (ChildBot, error) {
	var b ChildBot
	err := s.db.GetContext(ctx, &b,
		`SELECT id, token, admin_id, db_path, created_at
		   FROM child_bots WHERE token = ?`, token)
	if err != nil {
		if isNoRows(err) {
			return ChildBot{}, ErrNotFound
		}
		logger.LogEvent(ctx, logger.SVCBots, slog.LevelError, "childbot.get",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
		return ChildBot{}, fmt.Errorf("get child bot: %w", err)
	}
	return b, nil
}
