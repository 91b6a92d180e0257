package gui

import (
	"errors"
	"fmt"
	"time"

	"telegram_relay/internal/app"
)

// How long a status line stays visible.
const (
	statusOK      = 3 * time.Second
	statusInvalid = 5 * time.Second
	statusFailed  = 8 * time.Second
)

const noFileText = "No file selected"

func sendStatus(err error) (string, time.Duration) {
	if err == nil {
		return "Message sent", statusOK
	}
	var dispatchErr *app.DispatchError
	if errors.As(err, &dispatchErr) {
		return fmt.Sprintf("Send failed: %v", dispatchErr.Err), statusFailed
	}
	return err.Error(), statusInvalid
}

func saveStatus(err error, okText string) (string, time.Duration) {
	switch {
	case err == nil:
		return okText, statusOK
	case errors.Is(err, app.ErrInvalidCredentialFormat), errors.Is(err, app.ErrMissingChatTarget):
		return err.Error(), statusInvalid
	default:
		return err.Error(), statusFailed
	}
}
