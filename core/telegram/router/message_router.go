package router

import (
	"time"

	tg "github.com/KNset/blog-bot/core/telegram"
	"github.com/KNset/blog-bot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// FSM defines the minimal interface for an FSM manager.
type FSM interface {
	InProgress(userID int64) bool
	ManagerHandler(c tele.Context) error
}

// TextOptions controls fallback behaviour and role gating for text updates.
// Role checks apply when a text resolves to a role-gated command through its
// label alias; the command endpoints themselves are gated by CommandRoutes.
type TextOptions struct {
	UnknownText tele.HandlerFunc

	Roles         middleware.RoleChecker
	OnAdminReject tele.HandlerFunc
	OnSuperReject tele.HandlerFunc
}

// TextRoute builds the handler for plain text routing. An active dialogue
// consumes the text first; otherwise the text is looked up as a command or
// button label; otherwise the fallback runs.
func TextRoute(fsmMgr FSM, reg *tg.Registry, opts TextOptions) tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if fsmMgr != nil && fsmMgr.InProgress(c.Sender().ID) {
			return handleWithSummary(c, "fsm", start, "", "", func() error {
				return fsmMgr.ManagerHandler(c)
			})
		}

		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
				name := normalizeHandlerName(key)
				if opts.Roles != nil {
					senderID := c.Sender().ID
					if cmd.SuperOnly && !opts.Roles.IsSuperAdmin(senderID) {
						return handleWithSummary(c, name, start, "denied", "ok", func() error {
							if opts.OnSuperReject != nil {
								return opts.OnSuperReject(c)
							}
							return nil
						})
					}
					if cmd.AdminOnly && !opts.Roles.IsAdmin(senderID) {
						return handleWithSummary(c, name, start, "denied", "ok", func() error {
							if opts.OnAdminReject != nil {
								return opts.OnAdminReject(c)
							}
							return nil
						})
					}
				}
				return handleWithSummary(c, name, start, "", "", func() error {
					return cmd.Handler(c)
				})
			}
		}

		if reg != nil {
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "fallback", start, "", "", func() error {
					return fb(c)
				})
			}
		}

		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, "", "", func() error {
				return opts.UnknownText(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", "ok", nil)
		return nil
	}

	return tg.Route{
		Endpoint: tele.OnText,
		Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
	}
}
