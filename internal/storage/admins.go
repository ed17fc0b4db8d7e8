package storage

import (
	"context"
	"fmt"

	"github.com/KNset/blog-bot/core/logger"
	"log/slog"
)

// AddAdmin grants admin rights to a user. Returns (false, nil) when the user
// is already an admin; the insert is an idempotent no-op in that case.
func (s *Store) AddAdmin(ctx context.Context, userID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO admins (user_id) VALUES (?)`, userID)
	if err != nil {
		logger.LogEvent(ctx, logger.SVCAdmins, slog.LevelError, "admin.add",
			slog.String("status", "fail"),
			slog.Int64("admin_id", userID),
			slog.String("err", err.Error()),
		)
		return false, fmt.Errorf("add admin %d: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("add admin %d: %w", userID, err)
	}
	if n == 0 {
		return false, nil
	}
	logger.LogEvent(ctx, logger.SVCAdmins, slog.LevelInfo, "admin.add",
		slog.String("status", "ok"),
		slog.Int64("admin_id", userID),
	)
	return true, nil
}

// IsAdmin reports whether the user is present in the admin set.
func (s *Store) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	var one int
	err := s.db.GetContext(ctx, &one,
		`SELECT 1 FROM admins WHERE user_id = ?`, userID)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		logger.LogEvent(ctx, logger.SVCAdmins, slog.LevelError, "admin.check",
			slog.String("status", "fail"),
			slog.Int64("admin_id", userID),
			slog.String("err", err.Error()),
		)
		return false, fmt.Errorf("check admin %d: %w", userID, err)
	}
	return true, nil
}
