// Package roles decides what an acting identity may do. Super-admin status is
// configuration, not data: the configured identity stays privileged even when
// the stored admin set is empty or unreadable.
package roles

import (
	"context"
	"time"

	"github.com/KNset/blog-bot/core/logger"
	"log/slog"
)

// AdminSet is the stored admin membership lookup.
type AdminSet interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// Resolver answers role checks for the dispatcher and middleware.
type Resolver struct {
	superAdminID int64
	admins       AdminSet
	timeout      time.Duration
}

// NewResolver builds a Resolver around the configured super-admin identity
// and the stored admin set.
func NewResolver(superAdminID int64, admins AdminSet) *Resolver {
	return &Resolver{
		superAdminID: superAdminID,
		admins:       admins,
		timeout:      3 * time.Second,
	}
}

// IsSuperAdmin is a direct equality check against the configured identity.
func (r *Resolver) IsSuperAdmin(userID int64) bool {
	return userID == r.superAdminID
}

// IsAdmin reports whether the identity is the super-admin or a stored admin.
// A storage fault denies access and is logged here; the caller only sees the
// boolean.
func (r *Resolver) IsAdmin(userID int64) bool {
	if r.IsSuperAdmin(userID) {
		return true
	}
	if r.admins == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	ok, err := r.admins.IsAdmin(ctx, userID)
	if err != nil {
		logger.Error(ctx, "roles", "role.check",
			slog.String("status", "denied"),
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		return false
	}
	return ok
}
