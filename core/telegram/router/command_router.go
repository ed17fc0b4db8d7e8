package router

import (
	"github.com/KNset/blog-bot/core/logger"
	tg "github.com/KNset/blog-bot/core/telegram"
	"github.com/KNset/blog-bot/core/telegram/middleware"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// CommandRouteOptions configures how commands are wrapped and exposed.
type CommandRouteOptions struct {
	Roles         middleware.RoleChecker
	OnAdminReject tele.HandlerFunc
	OnSuperReject tele.HandlerFunc
}

// CommandRoutes prepares command handlers wrapped with shared middleware.
// SuperOnly commands are gated strictly to the configured super-admin,
// AdminOnly commands to any admin.
func CommandRoutes(reg *tg.Registry, opts CommandRouteOptions) []tg.Route {
	if reg == nil {
		return nil
	}

	routes := make([]tg.Route, 0, len(reg.Commands()))
	for cmd, def := range reg.Commands() {
		h := def.Handler
		h = middleware.RecoverMiddleware(h)
		h = middleware.LoggerMiddleware(h)
		switch {
		case def.SuperOnly:
			h = middleware.SuperAdminOnlyMiddleware(middleware.AccessOptions{
				Roles:    opts.Roles,
				OnReject: opts.OnSuperReject,
			})(h)
		case def.AdminOnly:
			h = middleware.AdminOnlyMiddleware(middleware.AccessOptions{
				Roles:    opts.Roles,
				OnReject: opts.OnAdminReject,
			})(h)
		}
		routes = append(routes, tg.Route{
			Endpoint: cmd,
			Handler:  h,
		})
	}

	logger.TWire.Info("tg.wire",
		slog.String("event", "complete"),
		slog.Int("commands", len(reg.Commands())),
		slog.Int("callbacks", len(reg.ListCallbacks())),
	)

	return routes
}
