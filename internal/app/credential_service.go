package app

import (
	"fmt"
	"strings"

	"telegram_relay/internal/domain/credentials"

	"github.com/sirupsen/logrus"
)

// CredentialService handles the explicit "save" actions for the token and chat id.
type CredentialService struct {
	store   credentials.Store
	current credentials.Record
	logger  *logrus.Entry
}

// NewCredentialService reads the stored record once; later saves keep it in memory.
func NewCredentialService(store credentials.Store, logger *logrus.Entry) *CredentialService {
	return &CredentialService{
		store:   store,
		current: store.Load(),
		logger:  logger,
	}
}

// Current returns the record as last loaded or saved.
func (s *CredentialService) Current() credentials.Record {
	return s.current
}

// SaveToken shape-checks the token and persists it alongside the current chat id.
func (s *CredentialService) SaveToken(token string) error {
	token = strings.TrimSpace(token)
	if !TokenLooksValid(token) {
		s.logger.Warn("Refusing to save malformed bot token")
		return ErrInvalidCredentialFormat
	}
	next := s.current
	next.Token = token
	if err := s.persist(next); err != nil {
		return fmt.Errorf("failed to save bot token: %w", err)
	}
	s.logger.Info("Bot token saved")
	return nil
}

// SaveChatID persists a non-empty chat id alongside the current token.
func (s *CredentialService) SaveChatID(chatID string) error {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return ErrMissingChatTarget
	}
	next := s.current
	next.ChatID = chatID
	if err := s.persist(next); err != nil {
		return fmt.Errorf("failed to save chat id: %w", err)
	}
	s.logger.WithField("chat_id", chatID).Info("Chat id saved")
	return nil
}

func (s *CredentialService) persist(rec credentials.Record) error {
	if err := s.store.Save(rec); err != nil {
		s.logger.WithError(err).Error("Failed to persist credentials")
		return err
	}
	s.current = rec
	return nil
}

// MaskToken hides all but the bot id part of a token for display.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	id, _, ok := strings.Cut(token, tokenSeparator)
	if !ok {
		return strings.Repeat("*", len(token))
	}
	return id + tokenSeparator + strings.Repeat("*", len(token)-len(id)-1)
}
