package dialog

import "github.com/KNset/blog-bot/core/telegram/state"

// Add-Post collects the four post fields in order.
const (
	StateAddPostTitle       state.State = "addpost_title"
	StateAddPostDescription state.State = "addpost_description"
	StateAddPostLink        state.State = "addpost_link"
	StateAddPostContent     state.State = "addpost_content"
)

// Add-Admin is a single step with a numeric re-prompt loop.
const StateAddAdminID state.State = "addadmin_id"

// Edit-Post mirrors Add-Post; "." keeps the current field value.
const (
	StateEditPostTitle       state.State = "editpost_title"
	StateEditPostDescription state.State = "editpost_description"
	StateEditPostLink        state.State = "editpost_link"
	StateEditPostContent     state.State = "editpost_content"
)

// Add-Bot collects the child bot token.
const StateAddBotToken state.State = "addbot_token"

// Session keys for partially collected field values.
const (
	keyPostTitle       = "post_title"
	keyPostDescription = "post_description"
	keyPostLink        = "post_link"

	keyEditPostID = "edit_post_id"

	// KeepCurrent is the reserved literal that keeps a field unchanged
	// inside Edit-Post. It has no special meaning anywhere else.
	KeepCurrent = "."
)
