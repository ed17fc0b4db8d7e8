package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const testSchema = `
CREATE TABLE admins (
    user_id INTEGER PRIMARY KEY
);
CREATE TABLE posts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    link TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE child_bots (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    token TEXT NOT NULL UNIQUE,
    admin_id INTEGER NOT NULL,
    db_path TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return New(db)
}

func TestAddAdminIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	added, err := s.AddAdmin(ctx, 42)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !added {
		t.Fatal("first add should report added")
	}

	added, err = s.AddAdmin(ctx, 42)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if added {
		t.Fatal("second add should report already present")
	}

	ok, err := s.IsAdmin(ctx, 42)
	if err != nil || !ok {
		t.Fatalf("IsAdmin(42) = %v, %v", ok, err)
	}
	ok, err = s.IsAdmin(ctx, 7)
	if err != nil || ok {
		t.Fatalf("IsAdmin(7) = %v, %v", ok, err)
	}
}

func TestAddGetPost(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddPost(ctx, "Title", "Desc", "https://example.com", "Body")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id == 0 {
		t.Fatal("expected assigned id")
	}

	p, err := s.GetPost(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Title != "Title" || p.Description != "Desc" || p.Link != "https://example.com" || p.Content != "Body" {
		t.Fatalf("unexpected post: %+v", p)
	}
	if p.CreatedAt.IsZero() {
		t.Fatal("expected store-assigned timestamp")
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.AddPost(ctx, "first", "", "", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := s.AddPost(ctx, "second", "", "", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if second <= first {
		t.Fatalf("ids not increasing: %d then %d", first, second)
	}

	posts, err := s.ListPosts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != second || posts[1].ID != first {
		t.Fatalf("expected newest first, got %d then %d", posts[0].ID, posts[1].ID)
	}

	n, err := s.CountPosts(ctx)
	if err != nil || n != 2 {
		t.Fatalf("CountPosts = %d, %v", n, err)
	}
}

func TestListPostsEmpty(t *testing.T) {
	s := newTestStore(t)
	posts, err := s.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty list, got %d", len(posts))
	}
}

func TestUpdatePost(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddPost(ctx, "old", "keep", "keep-link", "old-body")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.UpdatePost(ctx, id, "new", "keep", "keep-link", "new-body"); err != nil {
		t.Fatalf("update: %v", err)
	}

	p, err := s.GetPost(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Title != "new" || p.Content != "new-body" {
		t.Fatalf("overwrite lost: %+v", p)
	}
	if p.Description != "keep" || p.Link != "keep-link" {
		t.Fatalf("carried-over fields changed: %+v", p)
	}

	if err := s.UpdatePost(ctx, id+100, "x", "x", "x", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing = %v, want ErrNotFound", err)
	}
}

func TestDeletePost(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddPost(ctx, "t", "", "", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.DeletePost(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetPost(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after delete = %v, want ErrNotFound", err)
	}
	if err := s.DeletePost(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete = %v, want ErrNotFound", err)
	}
}

func TestChildBots(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	added, err := s.RegisterChildBot(ctx, "111:token", 42, "tenants/111.db")
	if err != nil || !added {
		t.Fatalf("register = %v, %v", added, err)
	}
	added, err = s.RegisterChildBot(ctx, "111:token", 42, "tenants/dup.db")
	if err != nil {
		t.Fatalf("duplicate register: %v", err)
	}
	if added {
		t.Fatal("duplicate token should report already present")
	}

	bots, err := s.ListChildBots(ctx, 42)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bots) != 1 || bots[0].Token != "111:token" || bots[0].DBPath != "tenants/111.db" {
		t.Fatalf("unexpected list: %+v", bots)
	}

	b, err := s.GetChildBotByToken(ctx, "111:token")
	if err != nil || b.AdminID != 42 {
		t.Fatalf("get by token = %+v, %v", b, err)
	}
	if _, err := s.GetChildBotByToken(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing token = %v, want ErrNotFound", err)
	}

	other, err := s.ListChildBots(ctx, 7)
	if err != nil || len(other) != 0 {
		t.Fatalf("foreign admin list = %+v, %v", other, err)
	}
}
