package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"telegram_relay/internal/app"
	"telegram_relay/internal/infra/config"
	"telegram_relay/internal/infra/logger"
	"telegram_relay/internal/infra/telegram"

	flags "github.com/jessevdk/go-flags"
)

// deps is everything the commands share once global options are parsed.
type deps struct {
	ctx         context.Context
	cfg         *config.AppConfig
	store       *config.FileStore
	credentials *app.CredentialService
	relay       *app.RelayService
}

func main() {
	rootCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	cfg := &config.AppConfig{}
	rt := &deps{ctx: rootCtx, cfg: cfg}

	parser := config.NewParser(cfg)
	registerCommands(parser, rt)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		rt.init()
		return cmd.Execute(args)
	}

	// flags.Default prints every error, including those returned by commands.
	if _, err := parser.Parse(); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) {
			if flagErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func (rt *deps) init() {
	rt.cfg.Normalize()
	logger.Init(rt.cfg)

	rt.store = config.NewFileStore(rt.cfg.ConfigFile, logger.Component("config_store"))
	rt.credentials = app.NewCredentialService(rt.store, logger.Component("credentials"))

	dispatcher := app.NewDispatcher(
		telegram.NewClientFactory(rt.cfg.APIURL, nil),
		logger.Component("dispatcher"),
	)
	rt.relay = app.NewRelayService(dispatcher, logger.Component("relay"))

	logger.Log.WithField("config_file", rt.cfg.ConfigFile).Debug("Application setup complete")
}

func registerCommands(parser *flags.Parser, rt *deps) {
	mustAdd := func(name, short, long string, data interface{}) {
		if _, err := parser.AddCommand(name, short, long, data); err != nil {
			panic(fmt.Sprintf("register command %s: %v", name, err))
		}
	}
	mustAdd("send", "Send a message", "Send a message, optionally with one attachment and up to six link buttons.", &sendCommand{rt: rt})
	mustAdd("save-token", "Save the bot token", "Check the bot token's shape and save it to the config file.", &saveTokenCommand{rt: rt})
	mustAdd("save-chat", "Save the chat id", "Save the destination chat id to the config file.", &saveChatCommand{rt: rt})
	mustAdd("show-config", "Show saved settings", "Print the saved chat id and a masked bot token.", &showConfigCommand{rt: rt})
	mustAdd("gui", "Open the send form", "Open the desktop send form.", &guiCommand{rt: rt})
}
