package app

import (
	"telegram_relay/internal/domain/credentials"
	"telegram_relay/internal/domain/message"
)

// Draft is the UI-owned state behind the send form. The core only ever sees
// the Request snapshots it produces.
type Draft struct {
	Token   string
	ChatID  string
	Text    string
	Buttons [message.MaxButtons]message.Button

	attachment *message.Attachment
}

// NewDraft pre-fills the credential fields from a stored record.
func NewDraft(rec credentials.Record) *Draft {
	return &Draft{Token: rec.Token, ChatID: rec.ChatID}
}

// Attach puts a file in the single attachment slot, replacing any previous choice.
func (d *Draft) Attach(kind message.Kind, path string) {
	if path == "" {
		d.attachment = nil
		return
	}
	d.attachment = &message.Attachment{Kind: kind, Path: path}
}

// ClearAttachment empties the attachment slot.
func (d *Draft) ClearAttachment() {
	d.attachment = nil
}

// Attachment returns a copy of the chosen attachment, or nil.
func (d *Draft) Attachment() *message.Attachment {
	if d.attachment == nil {
		return nil
	}
	a := *d.attachment
	return &a
}

// SetButton fills one of the button slots. Out of range slots are ignored.
func (d *Draft) SetButton(slot int, label, url string) {
	if slot < 0 || slot >= len(d.Buttons) {
		return
	}
	d.Buttons[slot] = message.Button{Label: label, URL: url}
}

// Request snapshots the draft.
func (d *Draft) Request() message.Request {
	buttons := make([]message.Button, len(d.Buttons))
	copy(buttons, d.Buttons[:])
	return message.Request{
		Token:      d.Token,
		ChatID:     d.ChatID,
		Text:       d.Text,
		Attachment: d.Attachment(),
		Buttons:    buttons,
	}
}

// Ready reports whether the current draft would pass validation.
// The form uses it to enable the send button.
func (d *Draft) Ready() bool {
	_, err := Validate(d.Request())
	return err == nil
}

// Settle applies the outcome of a successful send: a used attachment is not
// sent twice, so the slot resets to empty.
func (d *Draft) Settle(sent Sent) {
	if sent.UsedAttachment {
		d.ClearAttachment()
	}
}
