// Package dialog runs the multi-step guided dialogues: Add-Post, Add-Admin,
// Edit-Post and Add-Bot. Each dialogue advances one FSM state per inbound
// text and commits through the persistence gateway at its terminal step.
package dialog

import (
	"context"

	"github.com/KNset/blog-bot/core/logger"
	tghelpers "github.com/KNset/blog-bot/core/telegram/helpers"
	"github.com/KNset/blog-bot/core/telegram/state"
	"github.com/KNset/blog-bot/internal/storage"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Gateway is the slice of the persistence gateway the dialogues commit through.
type Gateway interface {
	AddAdmin(ctx context.Context, userID int64) (bool, error)
	AddPost(ctx context.Context, title, description, link, content string) (int64, error)
	GetPost(ctx context.Context, id int64) (storage.Post, error)
	UpdatePost(ctx context.Context, id int64, title, description, link, content string) error
}

// Provisioner creates and registers a tenant child bot from its token.
type Provisioner interface {
	Provision(ctx context.Context, token string, adminID int64) (storage.ChildBot, bool, error)
}

// Menus redisplays the admin keyboard after a dialogue ends; implemented by
// the bot wiring layer.
type Menus interface {
	ShowAdminMenu(c tele.Context) error
}

// Result is what one consumed input produces: a reply and whether the admin
// menu should be redisplayed because the dialogue ended.
type Result struct {
	Reply    string
	ShowMenu bool
}

type stepFn func(ctx context.Context, userID int64, text string) (Result, error)

// Engine owns dialogue session state and step transitions. One session slot
// per user; starting a new dialogue abandons any unfinished one.
type Engine struct {
	sessions    state.Manager
	store       Gateway
	provisioner Provisioner
	menus       Menus
}

// New builds the engine. The provisioner may be nil when the multi-tenant
// variant is disabled; Add-Bot then reports a generic failure.
func New(sessions state.Manager, store Gateway, provisioner Provisioner) *Engine {
	return &Engine{
		sessions:    sessions,
		store:       store,
		provisioner: provisioner,
	}
}

// SetMenus wires the menu renderer. Separate from New because the bot layer
// that renders menus is constructed after the engine.
func (e *Engine) SetMenus(m Menus) {
	e.menus = m
}

// Sessions exposes the session manager for routing.
func (e *Engine) Sessions() state.Manager {
	return e.sessions
}

// RegisterStates binds every dialogue state to its handler.
func (e *Engine) RegisterStates() {
	state.RegisterHandler(StateAddPostTitle, e.adapt("addpost.title", e.stepAddPostTitle))
	state.RegisterHandler(StateAddPostDescription, e.adapt("addpost.description", e.stepAddPostDescription))
	state.RegisterHandler(StateAddPostLink, e.adapt("addpost.link", e.stepAddPostLink))
	state.RegisterHandler(StateAddPostContent, e.adapt("addpost.content", e.stepAddPostContent))

	state.RegisterHandler(StateAddAdminID, e.adapt("addadmin.id", e.stepAddAdminID))

	state.RegisterHandler(StateEditPostTitle, e.adapt("editpost.title", e.stepEditPostTitle))
	state.RegisterHandler(StateEditPostDescription, e.adapt("editpost.description", e.stepEditPostDescription))
	state.RegisterHandler(StateEditPostLink, e.adapt("editpost.link", e.stepEditPostLink))
	state.RegisterHandler(StateEditPostContent, e.adapt("editpost.content", e.stepEditPostContent))

	state.RegisterHandler(StateAddBotToken, e.adapt("addbot.token", e.stepAddBotToken))
}

// Cancel discards the session. Valid in every non-terminal state.
func (e *Engine) Cancel(userID int64) {
	e.sessions.Clear(userID)
}

// InProgress reports whether the user has an active dialogue.
func (e *Engine) InProgress(userID int64) bool {
	return e.sessions.InProgress(userID)
}

// adapt turns a step function into a telebot handler: run the step, report
// faults as a generic failure, send the reply, redisplay the menu when asked.
func (e *Engine) adapt(name string, fn stepFn) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := tghelpers.BuildContext(c)
		userID := c.Sender().ID

		res, err := fn(ctx, userID, c.Text())
		if err != nil {
			logger.Error(ctx, "dialog", "dialog.step",
				slog.String("flow", name),
				slog.String("status", "fail"),
				slog.Int64("user_id", userID),
				slog.String("err", err.Error()),
			)
			e.sessions.Clear(userID)
			if sendErr := tghelpers.SendMD(c, msgFailure); sendErr != nil {
				return sendErr
			}
			return e.showAdminMenu(c)
		}

		logger.Debug(ctx, "dialog", "dialog.step",
			slog.String("flow", name),
			slog.String("status", "ok"),
			slog.Int64("user_id", userID),
		)

		if res.Reply != "" {
			if err := tghelpers.SendMD(c, res.Reply); err != nil {
				return err
			}
		}
		if res.ShowMenu {
			return e.showAdminMenu(c)
		}
		return nil
	}
}

func (e *Engine) showAdminMenu(c tele.Context) error {
	if e.menus == nil {
		return nil
	}
	return e.menus.ShowAdminMenu(c)
}
