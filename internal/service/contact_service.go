package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaytaylor/html2text"

	"github.com/vbonduro/amblitz/internal/contact"
	"github.com/vbonduro/amblitz/internal/domain"
)

// RecipientName is the to_name sent with every contact email.
const RecipientName = "Amblitz Design Team"

var notificationTmpl = template.Must(template.New("notification").Parse(`<html><body>
<h2>New message from {{.FirstName}} {{.LastName}}</h2>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Received:</strong> {{.ReceivedAt.Format "2006-01-02 15:04 MST"}}</p>
<p>{{.Message}}</p>
<p>Reference: {{.ID}}</p>
</body></html>`))

// ValidationError lists the problems with a submitted form.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid contact form: " + strings.Join(e.Messages, "; ")
}

type ContactService struct {
	sender contact.Sender
	logger *slog.Logger
	now    func() time.Time
}

func NewContactService(sender contact.Sender, logger *slog.Logger) *ContactService {
	return &ContactService{sender: sender, logger: logger, now: time.Now}
}

// Submit validates f and sends it. Validation failures are returned as
// *ValidationError and nothing is sent.
func (s *ContactService) Submit(ctx context.Context, f contact.Form) (*domain.ContactMessage, error) {
	if errs := contact.ValidateForm(f); len(errs) > 0 {
		return nil, &ValidationError{Messages: errs}
	}

	msg := &domain.ContactMessage{
		ID:         uuid.NewString(),
		FirstName:  strings.TrimSpace(f.FirstName),
		LastName:   strings.TrimSpace(f.LastName),
		Email:      strings.TrimSpace(f.Email),
		Message:    strings.TrimSpace(f.Message),
		ReceivedAt: s.now().UTC(),
	}

	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, msg); err != nil {
		return nil, fmt.Errorf("failed to render notification: %w", err)
	}
	text, err := html2text.FromString(body.String(), html2text.Options{OmitLinks: true, TextOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to convert notification to text: %w", err)
	}

	email := contact.Email{TemplateParams: map[string]string{
		"first_name":    msg.FirstName,
		"last_name":     msg.LastName,
		"email":         msg.Email,
		"message":       msg.Message,
		"to_name":       RecipientName,
		"message_html":  body.String(),
		"message_text":  text,
		"submission_id": msg.ID,
	}}

	s.logger.Info("sending contact message", "submission_id", msg.ID)
	if err := s.sender.Send(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to send contact message: %w", err)
	}
	s.logger.Info("contact message sent", "submission_id", msg.ID)
	return msg, nil
}
