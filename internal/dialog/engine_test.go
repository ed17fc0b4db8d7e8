package dialog

import (
	"context"
	"strings"
	"testing"

	"github.com/KNset/blog-bot/core/telegram/state"
	"github.com/KNset/blog-bot/internal/storage"
)

type fakeGateway struct {
	admins  map[int64]bool
	posts   map[int64]storage.Post
	nextID  int64
	addErr  error
	updated []int64
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		admins: make(map[int64]bool),
		posts:  make(map[int64]storage.Post),
		nextID: 1,
	}
}

func (f *fakeGateway) AddAdmin(_ context.Context, userID int64) (bool, error) {
	if f.addErr != nil {
		return false, f.addErr
	}
	if f.admins[userID] {
		return false, nil
	}
	f.admins[userID] = true
	return true, nil
}

func (f *fakeGateway) AddPost(_ context.Context, title, description, link, content string) (int64, error) {
	id := f.nextID
	f.nextID++
	f.posts[id] = storage.Post{ID: id, Title: title, Description: description, Link: link, Content: content}
	return id, nil
}

func (f *fakeGateway) GetPost(_ context.Context, id int64) (storage.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return storage.Post{}, storage.ErrNotFound
	}
	return p, nil
}

func (f *fakeGateway) UpdatePost(_ context.Context, id int64, title, description, link, content string) error {
	if _, ok := f.posts[id]; !ok {
		return storage.ErrNotFound
	}
	f.posts[id] = storage.Post{ID: id, Title: title, Description: description, Link: link, Content: content}
	f.updated = append(f.updated, id)
	return nil
}

type fakeProvisioner struct {
	tokens map[string]storage.ChildBot
}

func (f *fakeProvisioner) Provision(_ context.Context, token string, adminID int64) (storage.ChildBot, bool, error) {
	if b, ok := f.tokens[token]; ok {
		return b, false, nil
	}
	b := storage.ChildBot{Token: token, AdminID: adminID, DBPath: "tenants/" + token + ".db"}
	if f.tokens == nil {
		f.tokens = make(map[string]storage.ChildBot)
	}
	f.tokens[token] = b
	return b, true, nil
}

func newTestEngine() (*Engine, *fakeGateway) {
	gw := newFakeGateway()
	return New(state.NewMemoryManager(), gw, &fakeProvisioner{}), gw
}

func TestAddPostFlow(t *testing.T) {
	e, gw := newTestEngine()
	ctx := context.Background()
	const user = int64(10)

	res := e.StartAddPost(user)
	if !strings.Contains(res.Reply, "Title") {
		t.Fatalf("entry prompt = %q", res.Reply)
	}
	if e.sessions.GetState(user) != StateAddPostTitle {
		t.Fatalf("state = %s", e.sessions.GetState(user))
	}

	steps := []struct {
		fn    stepFn
		input string
		next  state.State
	}{
		{e.stepAddPostTitle, "T", StateAddPostDescription},
		{e.stepAddPostDescription, "D", StateAddPostLink},
		{e.stepAddPostLink, "L", StateAddPostContent},
	}
	for _, s := range steps {
		if _, err := s.fn(ctx, user, s.input); err != nil {
			t.Fatalf("step(%q): %v", s.input, err)
		}
		if got := e.sessions.GetState(user); got != s.next {
			t.Fatalf("after %q state = %s, want %s", s.input, got, s.next)
		}
	}

	res, err := e.stepAddPostContent(ctx, user, "C")
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if !res.ShowMenu || res.Reply != msgPostDone {
		t.Fatalf("commit result = %+v", res)
	}
	if e.sessions.InProgress(user) {
		t.Fatal("session not cleared after commit")
	}

	p := gw.posts[1]
	if p.Title != "T" || p.Description != "D" || p.Link != "L" || p.Content != "C" {
		t.Fatalf("committed post = %+v", p)
	}
}

func TestAddPostSequentialIDs(t *testing.T) {
	e, gw := newTestEngine()
	ctx := context.Background()
	const user = int64(10)

	for i := 0; i < 2; i++ {
		e.StartAddPost(user)
		_, _ = e.stepAddPostTitle(ctx, user, "t")
		_, _ = e.stepAddPostDescription(ctx, user, "d")
		_, _ = e.stepAddPostLink(ctx, user, "l")
		if _, err := e.stepAddPostContent(ctx, user, "c"); err != nil {
			t.Fatalf("commit %d: %v", i, err)
		}
	}
	if len(gw.posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(gw.posts))
	}
}

func TestAddAdminReprompt(t *testing.T) {
	e, gw := newTestEngine()
	ctx := context.Background()
	const user = int64(10)

	e.StartAddAdmin(user)

	res, err := e.stepAddAdminID(ctx, user, "not-a-number")
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if res.Reply != msgAdminInvalidID || res.ShowMenu {
		t.Fatalf("re-prompt result = %+v", res)
	}
	if e.sessions.GetState(user) != StateAddAdminID {
		t.Fatal("non-numeric input must not advance the state")
	}
	if len(gw.admins) != 0 {
		t.Fatal("admin set mutated by invalid input")
	}

	res, err = e.stepAddAdminID(ctx, user, "777")
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if !res.ShowMenu || !strings.Contains(res.Reply, "777") {
		t.Fatalf("commit result = %+v", res)
	}
	if !gw.admins[777] {
		t.Fatal("admin not added")
	}
	if e.sessions.InProgress(user) {
		t.Fatal("session not cleared after commit")
	}
}

func TestAddAdminDuplicate(t *testing.T) {
	e, gw := newTestEngine()
	ctx := context.Background()
	const user = int64(10)
	gw.admins[777] = true

	e.StartAddAdmin(user)
	res, err := e.stepAddAdminID(ctx, user, "777")
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if res.Reply != msgAdminDuplicate {
		t.Fatalf("duplicate result = %+v", res)
	}
}

func TestEditPostSentinel(t *testing.T) {
	e, gw := newTestEngine()
	ctx := context.Background()
	const user = int64(10)
	gw.posts[5] = storage.Post{ID: 5, Title: "old-title", Description: "old-desc", Link: "old-link", Content: "old-body"}
	gw.nextID = 6

	res, err := e.StartEditPost(ctx, user, 5)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !strings.Contains(res.Reply, "old-title") {
		t.Fatalf("entry prompt = %q", res.Reply)
	}

	_, _ = e.stepEditPostTitle(ctx, user, "new-title")
	_, _ = e.stepEditPostDescription(ctx, user, ".")
	_, _ = e.stepEditPostLink(ctx, user, ".")
	res, err = e.stepEditPostContent(ctx, user, "new-body")
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if res.Reply != msgEditDone {
		t.Fatalf("commit result = %+v", res)
	}

	p := gw.posts[5]
	if p.Title != "new-title" || p.Content != "new-body" {
		t.Fatalf("overwritten fields lost: %+v", p)
	}
	if p.Description != "old-desc" || p.Link != "old-link" {
		t.Fatalf("sentinel fields changed: %+v", p)
	}
}

func TestEditPostMissingTarget(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()
	const user = int64(10)

	res, err := e.StartEditPost(ctx, user, 99)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if res.Reply != msgPostMissing {
		t.Fatalf("missing target result = %+v", res)
	}
	if e.sessions.InProgress(user) {
		t.Fatal("no state should be armed for a missing post")
	}
}

func TestEditPostDeletedMidDialogue(t *testing.T) {
	e, gw := newTestEngine()
	ctx := context.Background()
	const user = int64(10)
	gw.posts[5] = storage.Post{ID: 5, Title: "t"}
	gw.nextID = 6

	if _, err := e.StartEditPost(ctx, user, 5); err != nil {
		t.Fatalf("start: %v", err)
	}
	_, _ = e.stepEditPostTitle(ctx, user, ".")
	_, _ = e.stepEditPostDescription(ctx, user, ".")
	_, _ = e.stepEditPostLink(ctx, user, ".")

	delete(gw.posts, 5)

	res, err := e.stepEditPostContent(ctx, user, ".")
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if res.Reply != msgPostMissing {
		t.Fatalf("racing delete result = %+v", res)
	}
	if e.sessions.InProgress(user) {
		t.Fatal("session must be cleared after a lost target")
	}
}

func TestCancelClearsAnyState(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()
	const user = int64(10)

	e.StartAddPost(user)
	_, _ = e.stepAddPostTitle(ctx, user, "T")
	if !e.InProgress(user) {
		t.Fatal("dialogue should be in progress")
	}

	e.Cancel(user)
	if e.InProgress(user) {
		t.Fatal("cancel must clear the session")
	}
	if _, ok := e.sessions.GetTempString(user, keyPostTitle); ok {
		t.Fatal("cancel must discard collected fields")
	}
}

func TestAddBotFlow(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()
	const user = int64(10)

	e.StartAddBot(user)
	res, err := e.stepAddBotToken(ctx, user, "123:abc")
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	if !strings.Contains(res.Reply, "tenants/123:abc.db") {
		t.Fatalf("provision result = %+v", res)
	}

	e.StartAddBot(user)
	res, err = e.stepAddBotToken(ctx, user, "123:abc")
	if err != nil {
		t.Fatalf("duplicate provision: %v", err)
	}
	if res.Reply != msgBotDuplicate {
		t.Fatalf("duplicate result = %+v", res)
	}
}

func TestStartingNewDialogueAbandonsOldOne(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()
	const user = int64(10)

	e.StartAddPost(user)
	_, _ = e.stepAddPostTitle(ctx, user, "T")

	e.StartAddAdmin(user)
	if e.sessions.GetState(user) != StateAddAdminID {
		t.Fatalf("state = %s", e.sessions.GetState(user))
	}
	if _, ok := e.sessions.GetTempString(user, keyPostTitle); ok {
		t.Fatal("stale fields survived the new dialogue")
	}
}
