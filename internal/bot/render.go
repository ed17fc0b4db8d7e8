package bot

import (
	"fmt"
	"strings"

	"github.com/KNset/blog-bot/core/telegram/format"
	"github.com/KNset/blog-bot/internal/storage"
)

const msgGenericFailure = "Something went wrong. Please try again later."
const msgPostNotFound = "Post not found. It may have been deleted."

// renderPost formats one post for Markdown delivery: bold title, italic
// description, body, the link and the creation date.
func renderPost(p storage.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n\n", format.EscapeV1(p.Title))
	if p.Description != "" {
		fmt.Fprintf(&b, "_%s_\n\n", format.EscapeV1(p.Description))
	}
	if p.Content != "" {
		fmt.Fprintf(&b, "%s\n\n", format.EscapeV1(p.Content))
	}
	if p.Link != "" {
		fmt.Fprintf(&b, "[Read More](%s)\n", p.Link)
	}
	fmt.Fprintf(&b, "Date: %s", p.CreatedAt.Format("2006-01-02 15:04"))
	return b.String()
}
