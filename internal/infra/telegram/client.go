// internal/infra/telegram/client.go
package telegram

import (
	"fmt"
	"net/http"
	"path/filepath"

	"telegram_relay/internal/domain/message"
	domain "telegram_relay/internal/domain/telegram"

	"gopkg.in/telebot.v3"
)

// BotSender is the part of *telebot.Bot the adapter uses.
type BotSender interface {
	Send(to telebot.Recipient, what interface{}, options ...interface{}) (*telebot.Message, error)
}

// chatTarget lets a chat be addressed by numeric id or by @username.
type chatTarget string

func (c chatTarget) Recipient() string { return string(c) }

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot BotSender
}

func NewTelebotAdapter(b BotSender) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// NewClientFactory returns a factory creating one offline bot per token.
// Offline bots skip the getMe round trip, so the first request made is the send itself.
func NewClientFactory(apiURL string, httpClient *http.Client) domain.ClientFactory {
	return func(token string) (domain.Client, error) {
		bot, err := telebot.NewBot(telebot.Settings{
			URL:     apiURL,
			Token:   token,
			Client:  httpClient,
			Offline: true,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create telegram bot: %w", err)
		}
		return NewTelebotAdapter(bot), nil
	}
}

// SendText sends a Markdown text message.
func (a *TelebotAdapter) SendText(chatID, text string, buttons []message.Button) error {
	opts := &telebot.SendOptions{
		ParseMode:   telebot.ModeMarkdown,
		ReplyMarkup: linkKeyboard(buttons),
	}
	_, err := a.bot.Send(chatTarget(chatID), text, opts)
	return err
}

// SendPhoto uploads an image from disk with an optional caption.
func (a *TelebotAdapter) SendPhoto(chatID, path, caption string, buttons []message.Button) error {
	photo := &telebot.Photo{File: telebot.FromDisk(path), Caption: caption}
	_, err := a.bot.Send(chatTarget(chatID), photo, mediaOptions(buttons))
	return err
}

// SendVideo uploads a video from disk with an optional caption.
func (a *TelebotAdapter) SendVideo(chatID, path, caption string, buttons []message.Button) error {
	video := &telebot.Video{File: telebot.FromDisk(path), FileName: filepath.Base(path), Caption: caption}
	_, err := a.bot.Send(chatTarget(chatID), video, mediaOptions(buttons))
	return err
}

// SendDocument uploads any file from disk with an optional caption.
// The upload keeps the local file name so the chat shows it with its extension.
func (a *TelebotAdapter) SendDocument(chatID, path, caption string, buttons []message.Button) error {
	doc := &telebot.Document{File: telebot.FromDisk(path), FileName: filepath.Base(path), Caption: caption}
	_, err := a.bot.Send(chatTarget(chatID), doc, mediaOptions(buttons))
	return err
}

func mediaOptions(buttons []message.Button) *telebot.SendOptions {
	return &telebot.SendOptions{ReplyMarkup: linkKeyboard(buttons)}
}

// linkKeyboard lays out one URL button per row, top to bottom in slot order.
func linkKeyboard(buttons []message.Button) *telebot.ReplyMarkup {
	if len(buttons) == 0 {
		return nil
	}
	markup := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, markup.Row(markup.URL(b.Label, b.URL)))
	}
	markup.Inline(rows...)
	return markup
}
