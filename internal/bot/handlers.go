package bot

import (
	"fmt"
	"strings"

	"github.com/KNset/blog-bot/core/telegram/commands"
	tghelpers "github.com/KNset/blog-bot/core/telegram/helpers"
	"github.com/KNset/blog-bot/core/telegram/keyboard"
	"github.com/KNset/blog-bot/internal/dialog"

	tele "gopkg.in/telebot.v4"
)

const (
	msgNotAuthorized      = "You are not authorized to perform this action."
	msgSuperAdminRequired = "You are not authorized to perform this action. Only the Super Admin can do this."
	msgCancelled          = "Operation cancelled."
)

func (a *App) registerCommands() {
	a.reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Show the menu",
	})
	a.reg.RegisterCommand("/cancel", commands.Command{
		Handler:     a.handleCancel,
		Description: "Cancel the current operation",
	})
	a.reg.RegisterCommand("/newpost", commands.Command{
		Handler:     a.handleNewPost,
		Description: "Create a new blog post",
		AdminOnly:   true,
		Aliases:     []string{labelAddPost},
	})
	a.reg.RegisterCommand("/posts", commands.Command{
		Handler:     a.handleViewPosts,
		Description: "Browse the blog posts",
		Aliases:     []string{labelView},
	})
	a.reg.RegisterCommand("/newadmin", commands.Command{
		Handler:     a.handleNewAdmin,
		Description: "Appoint a new admin",
		SuperOnly:   true,
		Aliases:     []string{labelAddAdmin},
	})
	a.reg.RegisterCommand("/newbot", commands.Command{
		Handler:     a.handleNewBot,
		Description: "Register a child bot",
		SuperOnly:   true,
		Aliases:     []string{labelAddBot},
	})
	a.reg.RegisterCommand("/mybots", commands.Command{
		Handler:     a.handleMyBots,
		Description: "List your child bots",
		SuperOnly:   true,
		Aliases:     []string{labelMyBots},
	})

	// Unrecognized text outside a dialogue answers with the role menu.
	a.reg.SetTextFallback(a.ShowRoleMenu)
}

func (a *App) handleStart(c tele.Context) error {
	return a.ShowRoleMenu(c)
}

// handleCancel is the cross-cutting cancel: valid mid-dialogue in any state.
func (a *App) handleCancel(c tele.Context) error {
	a.engine.Cancel(c.Sender().ID)
	if err := tghelpers.SendText(c, msgCancelled); err != nil {
		return err
	}
	return a.ShowRoleMenu(c)
}

// dialogReply delivers a dialogue entry or step result: the prompt replaces
// the reply keyboard, and a finished dialogue brings the admin menu back.
func (a *App) dialogReply(c tele.Context, res dialog.Result) error {
	if res.Reply != "" {
		if err := tghelpers.SendMD(c, res.Reply, keyboard.RemoveKeyboard()); err != nil {
			return err
		}
	}
	if res.ShowMenu {
		return a.ShowAdminMenu(c)
	}
	return nil
}

func (a *App) handleNewPost(c tele.Context) error {
	return a.dialogReply(c, a.engine.StartAddPost(c.Sender().ID))
}

func (a *App) handleNewAdmin(c tele.Context) error {
	return a.dialogReply(c, a.engine.StartAddAdmin(c.Sender().ID))
}

func (a *App) handleNewBot(c tele.Context) error {
	return a.dialogReply(c, a.engine.StartAddBot(c.Sender().ID))
}

// handleViewPosts shows the management view to admins and the plain browsing
// view to everyone else, then brings the menu back so the admin is not stuck.
func (a *App) handleViewPosts(c tele.Context) error {
	if a.roles.IsAdmin(c.Sender().ID) {
		if err := a.showManagePosts(c); err != nil {
			return err
		}
		return a.ShowAdminMenu(c)
	}
	return a.ShowUserMenu(c)
}

func (a *App) handleMyBots(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	bots, err := a.store.ListChildBots(ctx, c.Sender().ID)
	if err != nil {
		return tghelpers.SendText(c, msgGenericFailure)
	}
	if len(bots) == 0 {
		return tghelpers.SendText(c, "You have no child bots yet.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your child bots (%d):\n", len(bots))
	for _, cb := range bots {
		name := cb.Token
		if i := strings.IndexByte(name, ':'); i >= 0 {
			name = name[:i]
		}
		fmt.Fprintf(&b, "• bot %s: %s (since %s)\n", name, cb.DBPath, cb.CreatedAt.Format("2006-01-02"))
	}
	return tghelpers.SendText(c, b.String())
}

func (a *App) rejectAdmin(c tele.Context) error {
	return tghelpers.SendText(c, msgNotAuthorized)
}

func (a *App) rejectSuper(c tele.Context) error {
	return tghelpers.SendText(c, msgSuperAdminRequired)
}
