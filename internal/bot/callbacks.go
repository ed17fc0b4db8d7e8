package bot

import (
	"errors"

	"github.com/KNset/blog-bot/core/telegram/callbacks"
	tghelpers "github.com/KNset/blog-bot/core/telegram/helpers"
	"github.com/KNset/blog-bot/internal/storage"

	tele "gopkg.in/telebot.v4"
)

// Inline callback keys. The payload carries the post id.
const (
	cbPostView   = "post_view"
	cbPostEdit   = "post_edit"
	cbPostDelete = "post_delete"
)

func (a *App) registerCallbacks() {
	_ = a.reg.RegisterCallback(cbPostView, a.cbView)
	_ = a.reg.RegisterCallback(cbPostEdit, a.cbEdit)
	_ = a.reg.RegisterCallback(cbPostDelete, a.cbDelete)
}

// cbView renders a single post in place of the pressed button's message.
func (a *App) cbView(c tele.Context) error {
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return tghelpers.SendText(c, msgPostNotFound)
	}

	ctx := tghelpers.BuildContext(c)
	post, err := a.store.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return tghelpers.SendText(c, msgPostNotFound)
		}
		return tghelpers.SendText(c, msgGenericFailure)
	}
	return tghelpers.EditOrSendMD(c, renderPost(post))
}

// cbEdit enters the Edit-Post dialogue for the selected post. Callbacks are
// not command-gated, so the role check happens here.
func (a *App) cbEdit(c tele.Context) error {
	if !a.roles.IsAdmin(c.Sender().ID) {
		return tghelpers.SendText(c, msgNotAuthorized)
	}
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return tghelpers.SendText(c, msgPostNotFound)
	}

	ctx := tghelpers.BuildContext(c)
	res, err := a.engine.StartEditPost(ctx, c.Sender().ID, id)
	if err != nil {
		return tghelpers.SendText(c, msgGenericFailure)
	}
	return a.dialogReply(c, res)
}

// cbDelete is a direct action, not a dialogue: delete and report in place.
func (a *App) cbDelete(c tele.Context) error {
	if !a.roles.IsAdmin(c.Sender().ID) {
		return tghelpers.SendText(c, msgNotAuthorized)
	}
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return tghelpers.SendText(c, msgPostNotFound)
	}

	ctx := tghelpers.BuildContext(c)
	if err := a.store.DeletePost(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return tghelpers.SendText(c, msgPostNotFound)
		}
		return tghelpers.SendText(c, msgGenericFailure)
	}
	return tghelpers.SendText(c, "Post deleted.")
}
