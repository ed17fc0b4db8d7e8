package dialog

import (
	"context"
	"errors"
	"fmt"
)

// StartAddBot enters the Add-Bot dialogue (super-admin only, enforced by the
// caller).
func (e *Engine) StartAddBot(userID int64) Result {
	e.sessions.Clear(userID)
	e.sessions.SetState(userID, StateAddBotToken)
	return Result{Reply: msgAskBotToken}
}

// stepAddBotToken is the terminal step: provision the tenant database and
// record the registration.
func (e *Engine) stepAddBotToken(ctx context.Context, userID int64, text string) (Result, error) {
	if e.provisioner == nil {
		return Result{}, errors.New("dialog: no provisioner configured")
	}

	bot, created, err := e.provisioner.Provision(ctx, text, userID)
	if err != nil {
		return Result{}, err
	}

	e.sessions.Clear(userID)
	if !created {
		return Result{Reply: msgBotDuplicate, ShowMenu: true}, nil
	}
	return Result{Reply: fmt.Sprintf(msgBotRegistered, bot.DBPath), ShowMenu: true}, nil
}
