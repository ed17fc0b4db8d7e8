package middleware

import tele "gopkg.in/telebot.v4"

// RoleChecker answers whether an identity may perform admin or super-admin actions.
// The super-admin identity comes from configuration, not the store, so it
// satisfies both checks even when the admin set is empty.
type RoleChecker interface {
	IsAdmin(userID int64) bool
	IsSuperAdmin(userID int64) bool
}

// AccessOptions defines how role-gated checks should behave.
type AccessOptions struct {
	Roles    RoleChecker
	OnReject tele.HandlerFunc
}

// AdminOnlyMiddleware ensures that only admins can invoke downstream handlers.
func AdminOnlyMiddleware(opts AccessOptions) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if opts.Roles != nil && !opts.Roles.IsAdmin(c.Sender().ID) {
				if opts.OnReject != nil {
					return opts.OnReject(c)
				}
				return nil
			}
			return next(c)
		}
	}
}

// SuperAdminOnlyMiddleware restricts downstream handlers to the configured super-admin.
func SuperAdminOnlyMiddleware(opts AccessOptions) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if opts.Roles != nil && !opts.Roles.IsSuperAdmin(c.Sender().ID) {
				if opts.OnReject != nil {
					return opts.OnReject(c)
				}
				return nil
			}
			return next(c)
		}
	}
}
