package dialog

import (
	"context"
	"errors"
	"fmt"

	"github.com/KNset/blog-bot/core/telegram/format"
	"github.com/KNset/blog-bot/internal/storage"
)

// StartEditPost enters the Edit-Post dialogue for the given post. The target
// is fetched up front so a missing post aborts before any state is armed.
func (e *Engine) StartEditPost(ctx context.Context, userID, postID int64) (Result, error) {
	post, err := e.store.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Result{Reply: msgPostMissing, ShowMenu: true}, nil
		}
		return Result{}, err
	}

	e.sessions.Clear(userID)
	e.sessions.SetTemp(userID, keyEditPostID, postID)
	e.sessions.SetState(userID, StateEditPostTitle)
	return Result{Reply: fmt.Sprintf(msgEditAskTitle, format.EscapeV1(post.Title))}, nil
}

// The "." sentinel is stored verbatim and resolved against the original post
// at commit, so a field the admin skipped keeps whatever the store holds.

func (e *Engine) stepEditPostTitle(_ context.Context, userID int64, text string) (Result, error) {
	e.sessions.SetTemp(userID, keyPostTitle, text)
	e.sessions.SetState(userID, StateEditPostDescription)
	return Result{Reply: msgEditAskDesc}, nil
}

func (e *Engine) stepEditPostDescription(_ context.Context, userID int64, text string) (Result, error) {
	e.sessions.SetTemp(userID, keyPostDescription, text)
	e.sessions.SetState(userID, StateEditPostLink)
	return Result{Reply: msgEditAskLink}, nil
}

func (e *Engine) stepEditPostLink(_ context.Context, userID int64, text string) (Result, error) {
	e.sessions.SetTemp(userID, keyPostLink, text)
	e.sessions.SetState(userID, StateEditPostContent)
	return Result{Reply: msgEditAskBody}, nil
}

// stepEditPostContent resolves sentinels against the current row and commits
// the full overwrite. A post deleted mid-dialogue surfaces here as not-found.
func (e *Engine) stepEditPostContent(ctx context.Context, userID int64, text string) (Result, error) {
	postID, ok := e.sessions.GetTempInt64(userID, keyEditPostID)
	if !ok {
		e.sessions.Clear(userID)
		return Result{Reply: msgPostMissing, ShowMenu: true}, nil
	}

	current, err := e.store.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			e.sessions.Clear(userID)
			return Result{Reply: msgPostMissing, ShowMenu: true}, nil
		}
		return Result{}, err
	}

	title, _ := e.sessions.GetTempString(userID, keyPostTitle)
	description, _ := e.sessions.GetTempString(userID, keyPostDescription)
	link, _ := e.sessions.GetTempString(userID, keyPostLink)

	title = resolveField(title, current.Title)
	description = resolveField(description, current.Description)
	link = resolveField(link, current.Link)
	content := resolveField(text, current.Content)

	if err := e.store.UpdatePost(ctx, postID, title, description, link, content); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			e.sessions.Clear(userID)
			return Result{Reply: msgPostMissing, ShowMenu: true}, nil
		}
		return Result{}, err
	}

	e.sessions.Clear(userID)
	return Result{Reply: msgEditDone, ShowMenu: true}, nil
}

func resolveField(input, current string) string {
	if input == KeepCurrent {
		return current
	}
	return input
}
