package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"telegram_relay/internal/app"
	"telegram_relay/internal/domain/message"
	"telegram_relay/internal/infra/logger"
	"telegram_relay/internal/ui/gui"
)

type sendCommand struct {
	rt *deps

	Token    string   `long:"token" env:"TELEGRAM_TOKEN" description:"Bot token (defaults to the saved one)"`
	ChatID   string   `long:"chat-id" env:"TELEGRAM_CHAT_ID" description:"Destination chat id or @channel (defaults to the saved one)"`
	Text     string   `short:"m" long:"text" description:"Message text or caption, Markdown allowed; '-' reads stdin"`
	Photo    string   `long:"photo" description:"Image to send" value-name:"FILE"`
	Video    string   `long:"video" description:"Video to send" value-name:"FILE"`
	Document string   `long:"document" description:"Any file to send as a document" value-name:"FILE"`
	Buttons  []string `short:"b" long:"button" description:"Link button as Label=URL, up to six, in order" value-name:"LABEL=URL"`
}

func (c *sendCommand) Execute(_ []string) error {
	req, err := c.request(os.Stdin)
	if err != nil {
		return err
	}
	sent, err := c.rt.relay.Send(c.rt.ctx, req, nil)
	if err != nil {
		return err
	}
	fmt.Printf("Message sent (%s)\n", sent.Method)
	return nil
}

func (c *sendCommand) request(stdin io.Reader) (message.Request, error) {
	saved := c.rt.credentials.Current()
	req := message.Request{
		Token:  firstNonEmpty(c.Token, saved.Token),
		ChatID: firstNonEmpty(c.ChatID, saved.ChatID),
		Text:   c.Text,
	}

	if c.Text == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return message.Request{}, fmt.Errorf("failed to read message from stdin: %w", err)
		}
		req.Text = string(data)
	}

	attachment, err := c.attachment()
	if err != nil {
		return message.Request{}, err
	}
	req.Attachment = attachment

	for _, raw := range c.Buttons {
		b, err := message.ParseButton(raw)
		if err != nil {
			return message.Request{}, err
		}
		req.Buttons = append(req.Buttons, b)
	}
	return req, nil
}

func (c *sendCommand) attachment() (*message.Attachment, error) {
	var chosen []*message.Attachment
	for _, a := range []message.Attachment{
		{Kind: message.KindImage, Path: c.Photo},
		{Kind: message.KindVideo, Path: c.Video},
		{Kind: message.KindFile, Path: c.Document},
	} {
		if strings.TrimSpace(a.Path) == "" {
			continue
		}
		chosen = append(chosen, &a)
	}
	switch len(chosen) {
	case 0:
		return nil, nil
	case 1:
		return chosen[0], nil
	default:
		return nil, errors.New("only one of --photo, --video or --document may be given")
	}
}

type saveTokenCommand struct {
	rt *deps

	Args struct {
		Token string `positional-arg-name:"TOKEN"`
	} `positional-args:"yes" required:"yes"`
}

func (c *saveTokenCommand) Execute(_ []string) error {
	if err := c.rt.credentials.SaveToken(c.Args.Token); err != nil {
		return err
	}
	fmt.Printf("Token saved to %s\n", c.rt.store.Path())
	return nil
}

type saveChatCommand struct {
	rt *deps

	Args struct {
		ChatID string `positional-arg-name:"CHAT_ID"`
	} `positional-args:"yes" required:"yes"`
}

func (c *saveChatCommand) Execute(_ []string) error {
	if err := c.rt.credentials.SaveChatID(c.Args.ChatID); err != nil {
		return err
	}
	fmt.Printf("Chat id saved to %s\n", c.rt.store.Path())
	return nil
}

type showConfigCommand struct {
	rt *deps
}

func (c *showConfigCommand) Execute(_ []string) error {
	rec := c.rt.credentials.Current()
	fmt.Printf("config file: %s\n", c.rt.store.Path())
	fmt.Printf("token:       %s\n", orUnset(app.MaskToken(rec.Token)))
	fmt.Printf("chat id:     %s\n", orUnset(rec.ChatID))
	return nil
}

type guiCommand struct {
	rt *deps
}

func (c *guiCommand) Execute(_ []string) error {
	if !gui.Available() {
		return errors.New("this build has no desktop form (built with -tags headless)")
	}
	gui.Run(c.rt.ctx, c.rt.credentials, c.rt.relay, logger.Component("gui"))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func orUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}
