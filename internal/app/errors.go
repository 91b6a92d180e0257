package app

import (
	"errors"
	"fmt"

	"telegram_relay/internal/domain/telegram"
)

// Local validation failures. None of them ever reaches the network.
var ErrInvalidCredentialFormat = fmt.Errorf("bot token format is invalid: it must contain ':' and be longer than %d characters", minTokenLength)
var ErrMissingChatTarget = errors.New("chat id is empty")
var ErrEmptyPayload = errors.New("nothing to send: enter a message or choose a file")
var ErrTooManyButtons = fmt.Errorf("too many link buttons: at most %d are allowed", maxButtons)

// ErrDispatchFailed matches every *DispatchError through errors.Is.
var ErrDispatchFailed = errors.New("dispatch failed")

// DispatchError reports a send that was attempted and did not succeed.
type DispatchError struct {
	Method telegram.Method
	Err    error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDispatchFailed, e.Method, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

func (e *DispatchError) Is(target error) bool { return target == ErrDispatchFailed }
