//go:build headless

package gui

import (
	"context"

	"telegram_relay/internal/app"

	"github.com/sirupsen/logrus"
)

func Available() bool { return false }

func Run(_ context.Context, _ *app.CredentialService, _ *app.RelayService, logger *logrus.Entry) {
	logger.Warn("Desktop form requested in a headless build")
}
