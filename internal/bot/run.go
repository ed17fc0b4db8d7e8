package bot

import (
	tg "github.com/KNset/blog-bot/core/telegram"
	tgrouter "github.com/KNset/blog-bot/core/telegram/router"
)

// TelegramRunOptions assembles the routes and middleware for the bot runtime.
// Route order matters to telebot only in that command endpoints take
// precedence over OnText, which is how /cancel stays reachable mid-dialogue.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	cfg := &a.cfg.Core

	routes := []tg.Route{
		tgrouter.TextRoute(a.engine.Sessions(), a.reg, tgrouter.TextOptions{
			UnknownText:   a.ShowRoleMenu,
			Roles:         a.roles,
			OnAdminReject: a.rejectAdmin,
			OnSuperReject: a.rejectSuper,
		}),
		tgrouter.CallbackRoute(a.reg, tgrouter.CallbackOptions{}),
	}
	routes = append(routes, tgrouter.CommandRoutes(a.reg, tgrouter.CommandRouteOptions{
		Roles:         a.roles,
		OnAdminReject: a.rejectAdmin,
		OnSuperReject: a.rejectSuper,
	})...)

	return tg.RunOptions{
		Config:      cfg,
		Registry:    a.reg,
		Middlewares: tg.DefaultMiddlewares(cfg, nil),
		Routes:      routes,
	}, nil
}
