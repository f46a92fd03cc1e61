package demo

import (
	"context"
	"log/slog"
	"time"

	"github.com/vbonduro/amblitz/internal/contact"
)

// DefaultDelay approximates a real provider round trip.
const DefaultDelay = 1500 * time.Millisecond

// Sender accepts every email without delivering it. It is used when no
// EmailJS credentials are configured.
type Sender struct {
	delay  time.Duration
	logger *slog.Logger
}

func NewSender(delay time.Duration, logger *slog.Logger) *Sender {
	return &Sender{delay: delay, logger: logger}
}

func (s *Sender) Send(ctx context.Context, email contact.Email) error {
	s.logger.Info("demo mode: contact email not delivered",
		"submission_id", email.TemplateParams["submission_id"],
		"email", email.TemplateParams["email"],
		"first_name", email.TemplateParams["first_name"],
		"last_name", email.TemplateParams["last_name"],
	)
	if s.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
