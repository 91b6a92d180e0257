package telegram

import "telegram_relay/internal/domain/message"

// Method names the Bot API call used for a dispatch.
type Method string

const (
	MethodSendMessage  Method = "sendMessage"
	MethodSendPhoto    Method = "sendPhoto"
	MethodSendVideo    Method = "sendVideo"
	MethodSendDocument Method = "sendDocument"
)

// Client defines the four outgoing calls the relay needs from a bot.
// This keeps application logic free of the concrete bot library.
type Client interface {
	SendText(chatID, text string, buttons []message.Button) error
	SendPhoto(chatID, path, caption string, buttons []message.Button) error
	SendVideo(chatID, path, caption string, buttons []message.Button) error
	SendDocument(chatID, path, caption string, buttons []message.Button) error
}

// ClientFactory builds a Client bound to one bot token.
type ClientFactory func(token string) (Client, error)
