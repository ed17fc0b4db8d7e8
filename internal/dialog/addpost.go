package dialog

import "context"

// StartAddPost enters the Add-Post dialogue. Role gating happens before this
// is reached; the entry only arms the first state.
func (e *Engine) StartAddPost(userID int64) Result {
	e.sessions.Clear(userID)
	e.sessions.SetState(userID, StateAddPostTitle)
	return Result{Reply: msgAskTitle}
}

func (e *Engine) stepAddPostTitle(_ context.Context, userID int64, text string) (Result, error) {
	e.sessions.SetTemp(userID, keyPostTitle, text)
	e.sessions.SetState(userID, StateAddPostDescription)
	return Result{Reply: msgAskDesc}, nil
}

func (e *Engine) stepAddPostDescription(_ context.Context, userID int64, text string) (Result, error) {
	e.sessions.SetTemp(userID, keyPostDescription, text)
	e.sessions.SetState(userID, StateAddPostLink)
	return Result{Reply: msgAskLink}, nil
}

func (e *Engine) stepAddPostLink(_ context.Context, userID int64, text string) (Result, error) {
	e.sessions.SetTemp(userID, keyPostLink, text)
	e.sessions.SetState(userID, StateAddPostContent)
	return Result{Reply: msgAskBody}, nil
}

// stepAddPostContent is the terminal step: commit the four collected fields.
func (e *Engine) stepAddPostContent(ctx context.Context, userID int64, text string) (Result, error) {
	title, _ := e.sessions.GetTempString(userID, keyPostTitle)
	description, _ := e.sessions.GetTempString(userID, keyPostDescription)
	link, _ := e.sessions.GetTempString(userID, keyPostLink)

	if _, err := e.store.AddPost(ctx, title, description, link, text); err != nil {
		return Result{}, err
	}

	e.sessions.Clear(userID)
	return Result{Reply: msgPostDone, ShowMenu: true}, nil
}
