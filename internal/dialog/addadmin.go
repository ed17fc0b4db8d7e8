package dialog

import (
	"context"
	"fmt"
	"strconv"
)

// StartAddAdmin enters the Add-Admin dialogue. The caller has already
// verified the sender is the super-admin.
func (e *Engine) StartAddAdmin(userID int64) Result {
	e.sessions.Clear(userID)
	e.sessions.SetState(userID, StateAddAdminID)
	return Result{Reply: msgAskAdminID}
}

// stepAddAdminID parses the candidate id. Non-numeric input re-prompts in
// place without advancing; this is the only retry transition in the system.
func (e *Engine) stepAddAdminID(ctx context.Context, userID int64, text string) (Result, error) {
	newAdminID, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Result{Reply: msgAdminInvalidID}, nil
	}

	added, err := e.store.AddAdmin(ctx, newAdminID)
	if err != nil {
		return Result{}, err
	}

	e.sessions.Clear(userID)
	if !added {
		return Result{Reply: msgAdminDuplicate, ShowMenu: true}, nil
	}
	return Result{Reply: fmt.Sprintf(msgAdminAdded, newAdminID), ShowMenu: true}, nil
}
