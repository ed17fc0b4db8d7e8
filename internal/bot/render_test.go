package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/KNset/blog-bot/internal/storage"
)

func TestRenderPost(t *testing.T) {
	p := storage.Post{
		ID:          1,
		Title:       "Release notes",
		Description: "What changed",
		Link:        "https://example.com/notes",
		Content:     "Long form body",
		CreatedAt:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	out := renderPost(p)
	for _, want := range []string{
		"*Release notes*",
		"_What changed_",
		"Long form body",
		"[Read More](https://example.com/notes)",
		"Date: 2026-03-14 09:30",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered post missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPostEscapesMarkdown(t *testing.T) {
	p := storage.Post{Title: "a_b*c", CreatedAt: time.Now()}
	out := renderPost(p)
	if !strings.Contains(out, `a\_b\*c`) {
		t.Fatalf("title not escaped:\n%s", out)
	}
}

func TestRenderPostSkipsEmptyFields(t *testing.T) {
	p := storage.Post{Title: "only title", CreatedAt: time.Now()}
	out := renderPost(p)
	if strings.Contains(out, "Read More") {
		t.Fatalf("empty link rendered:\n%s", out)
	}
	if strings.Contains(out, "__") {
		t.Fatalf("empty description rendered:\n%s", out)
	}
}
