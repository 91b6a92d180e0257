package app

import (
	"context"
	"fmt"
	"os"

	"telegram_relay/internal/domain/message"
	"telegram_relay/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Sent describes a successful dispatch.
type Sent struct {
	Method         telegram.Method
	UsedAttachment bool
	Buttons        int
}

// Dispatcher turns a validated request into exactly one Bot API call.
type Dispatcher struct {
	newClient telegram.ClientFactory
	logger    *logrus.Entry
}

func NewDispatcher(newClient telegram.ClientFactory, logger *logrus.Entry) *Dispatcher {
	return &Dispatcher{
		newClient: newClient,
		logger:    logger,
	}
}

// MethodFor picks the Bot API call for a request. Any attachment kind other
// than image or video goes out as a document.
func MethodFor(req message.Request) telegram.Method {
	if !req.HasAttachment() {
		return telegram.MethodSendMessage
	}
	switch req.Attachment.Kind {
	case message.KindImage:
		return telegram.MethodSendPhoto
	case message.KindVideo:
		return telegram.MethodSendVideo
	default:
		return telegram.MethodSendDocument
	}
}

// Dispatch issues the call. Failures are returned as *DispatchError and never retried.
func (d *Dispatcher) Dispatch(ctx context.Context, v Validated) (Sent, error) {
	req := v.Request()
	buttons := v.Buttons()
	method := MethodFor(req)

	fail := func(err error) (Sent, error) {
		return Sent{}, &DispatchError{Method: method, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	if req.HasAttachment() {
		info, err := os.Stat(req.Attachment.Path)
		if err != nil {
			return fail(fmt.Errorf("failed to read attachment: %w", err))
		}
		if info.IsDir() {
			return fail(fmt.Errorf("failed to read attachment: %s is a directory", req.Attachment.Path))
		}
	}

	client, err := d.newClient(req.Token)
	if err != nil {
		return fail(fmt.Errorf("failed to initialize bot: %w", err))
	}

	logCtx := d.logger.WithFields(logrus.Fields{
		"method":  method,
		"chat_id": req.ChatID,
		"buttons": len(buttons),
	})
	logCtx.Debug("Dispatching message")

	switch method {
	case telegram.MethodSendPhoto:
		err = client.SendPhoto(req.ChatID, req.Attachment.Path, req.Text, buttons)
	case telegram.MethodSendVideo:
		err = client.SendVideo(req.ChatID, req.Attachment.Path, req.Text, buttons)
	case telegram.MethodSendDocument:
		err = client.SendDocument(req.ChatID, req.Attachment.Path, req.Text, buttons)
	default:
		err = client.SendText(req.ChatID, req.Text, buttons)
	}
	if err != nil {
		logCtx.WithError(err).Warn("Bot API call failed")
		return fail(err)
	}

	return Sent{
		Method:         method,
		UsedAttachment: req.HasAttachment(),
		Buttons:        len(buttons),
	}, nil
}
