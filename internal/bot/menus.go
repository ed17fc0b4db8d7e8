package bot

import (
	"fmt"
	"strconv"

	tghelpers "github.com/KNset/blog-bot/core/telegram/helpers"
	"github.com/KNset/blog-bot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// Reply keyboard labels. Registered as command aliases so a button press
// dispatches like the matching command.
const (
	labelAddPost  = "Add New Post"
	labelView     = "View All Posts"
	labelAddAdmin = "Add New Admin"
	labelAddBot   = "Add Bot"
	labelMyBots   = "My Bots"
)

// ShowAdminMenu renders the admin reply keyboard. The super-admin gets the
// extra admin- and bot-management rows.
func (a *App) ShowAdminMenu(c tele.Context) error {
	rows := [][]string{{labelAddPost, labelView}}
	if a.roles.IsSuperAdmin(c.Sender().ID) {
		rows = append(rows, []string{labelAddAdmin})
		rows = append(rows, []string{labelAddBot, labelMyBots})
	}
	return tghelpers.SendMD(c, "Welcome Admin! What would you like to do?", keyboard.ReplyButtons(rows...))
}

// ShowUserMenu lists the stored posts newest-first as title buttons, or a
// stay-tuned notice when there are none.
func (a *App) ShowUserMenu(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	posts, err := a.store.ListPosts(ctx)
	if err != nil {
		return tghelpers.SendText(c, msgGenericFailure)
	}
	if len(posts) == 0 {
		return tghelpers.SendText(c, "Welcome! There are no blog posts yet. Stay tuned!")
	}

	buttons := make([]keyboard.InlineBtn, 0, len(posts))
	for _, p := range posts {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   p.Title,
			Unique: cbPostView,
			Data:   strconv.FormatInt(p.ID, 10),
		})
	}
	text := fmt.Sprintf("Welcome! Here are the latest blog posts (%d):", len(posts))
	return tghelpers.SendMD(c, text, keyboard.InlineButtons(buttons))
}

// ShowRoleMenu picks the menu matching the sender's role.
func (a *App) ShowRoleMenu(c tele.Context) error {
	if a.roles.IsAdmin(c.Sender().ID) {
		return a.ShowAdminMenu(c)
	}
	return a.ShowUserMenu(c)
}

// showManagePosts renders the admin browsing view: every post with its own
// Edit and Delete controls.
func (a *App) showManagePosts(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	posts, err := a.store.ListPosts(ctx)
	if err != nil {
		return tghelpers.SendText(c, msgGenericFailure)
	}
	if len(posts) == 0 {
		return tghelpers.SendText(c, "There are no blog posts yet.")
	}

	rows := make([][]keyboard.InlineBtn, 0, len(posts)*2)
	for _, p := range posts {
		id := strconv.FormatInt(p.ID, 10)
		rows = append(rows,
			[]keyboard.InlineBtn{{Text: p.Title, Unique: cbPostView, Data: id}},
			[]keyboard.InlineBtn{
				{Text: "Edit", Unique: cbPostEdit, Data: id},
				{Text: "Delete", Unique: cbPostDelete, Data: id},
			},
		)
	}
	text := fmt.Sprintf("All blog posts (%d), newest first:", len(posts))
	return tghelpers.SendMD(c, text, keyboard.InlineButtonsRows(rows...))
}
