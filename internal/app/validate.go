package app

import (
	"strings"

	"telegram_relay/internal/domain/message"
)

const (
	tokenSeparator = ":"
	// minTokenLength is a coarse shape check only; real tokens are checked by Telegram.
	minTokenLength = 10
	maxButtons     = message.MaxButtons
)

// Validated is a request that passed Validate. It can only be produced by Validate.
type Validated struct {
	req     message.Request
	buttons []message.Button
}

// Request returns the validated snapshot.
func (v Validated) Request() message.Request { return v.req }

// Buttons returns the filtered link buttons, in on-screen order.
func (v Validated) Buttons() []message.Button { return v.buttons }

// TokenLooksValid applies the local shape check to a bot token.
func TokenLooksValid(token string) bool {
	return token != "" && strings.Contains(token, tokenSeparator) && len(token) > minTokenLength
}

// Validate checks a request before anything is sent. The first failing rule wins.
func Validate(req message.Request) (Validated, error) {
	req.Token = strings.TrimSpace(req.Token)
	req.ChatID = strings.TrimSpace(req.ChatID)
	req.Text = strings.TrimSpace(req.Text)

	if !TokenLooksValid(req.Token) {
		return Validated{}, ErrInvalidCredentialFormat
	}
	if req.ChatID == "" {
		return Validated{}, ErrMissingChatTarget
	}
	if req.Text == "" && !req.HasAttachment() {
		return Validated{}, ErrEmptyPayload
	}

	buttons := message.FilterButtons(req.Buttons)
	if len(buttons) > maxButtons {
		return Validated{}, ErrTooManyButtons
	}

	return Validated{req: req, buttons: buttons}, nil
}
