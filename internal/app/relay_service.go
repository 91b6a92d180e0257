package app

import (
	"context"

	"telegram_relay/internal/domain/message"

	"github.com/sirupsen/logrus"
)

// Phase is a step of a single send action.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseRejected
	PhaseDispatching
	PhaseSent
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseRejected:
		return "rejected"
	case PhaseDispatching:
		return "dispatching"
	case PhaseSent:
		return "sent"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Terminal reports whether the phase ends a send action.
func (p Phase) Terminal() bool {
	return p == PhaseRejected || p == PhaseSent || p == PhaseFailed
}

// RelayService runs validate-then-dispatch for one send action at a time.
type RelayService struct {
	dispatcher *Dispatcher
	logger     *logrus.Entry
}

func NewRelayService(dispatcher *Dispatcher, logger *logrus.Entry) *RelayService {
	return &RelayService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Send validates req and, when valid, dispatches it once. observe, if not nil,
// sees every phase in order, ending with PhaseIdle.
func (s *RelayService) Send(ctx context.Context, req message.Request, observe func(Phase)) (Sent, error) {
	notify := func(p Phase) {
		if observe != nil {
			observe(p)
		}
	}
	defer notify(PhaseIdle)

	notify(PhaseValidating)
	validated, err := Validate(req)
	if err != nil {
		s.logger.WithError(err).Info("Send request rejected")
		notify(PhaseRejected)
		return Sent{}, err
	}

	notify(PhaseDispatching)
	sent, err := s.dispatcher.Dispatch(ctx, validated)
	if err != nil {
		s.logger.WithError(err).Error("Failed to send message")
		notify(PhaseFailed)
		return Sent{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"method":          sent.Method,
		"used_attachment": sent.UsedAttachment,
		"buttons":         sent.Buttons,
	}).Info("Message sent")
	notify(PhaseSent)
	return sent, nil
}
