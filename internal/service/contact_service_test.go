package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/amblitz/internal/contact"
)

// stubSender records sent emails and returns a pre-configured error.
type stubSender struct {
	mu   sync.Mutex
	sent []contact.Email
	err  error
}

func (s *stubSender) Send(_ context.Context, email contact.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, email)
	return nil
}

func validForm() contact.Form {
	return contact.Form{
		FirstName: " Dana ",
		LastName:  "Reyes",
		Email:     "dana@example.com",
		Message:   "We are planning a <b>kitchen</b> remodel.",
	}
}

func TestContactServiceSubmit(t *testing.T) {
	sender := &stubSender{}
	svc := NewContactService(sender, slog.Default())
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }

	msg, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	_, err = uuid.Parse(msg.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Dana", msg.FirstName)

	require.Len(t, sender.sent, 1)
	params := sender.sent[0].TemplateParams
	assert.Equal(t, "Dana", params["first_name"])
	assert.Equal(t, "Reyes", params["last_name"])
	assert.Equal(t, "dana@example.com", params["email"])
	assert.Equal(t, RecipientName, params["to_name"])
	assert.Equal(t, msg.ID, params["submission_id"])

	assert.Contains(t, params["message_html"], "&lt;b&gt;kitchen&lt;/b&gt;")
	assert.Contains(t, params["message_html"], "2024-05-01 09:30 UTC")
	assert.Contains(t, params["message_text"], "New message from Dana Reyes")
	assert.Contains(t, params["message_text"], "<b>kitchen</b>")
	assert.NotContains(t, params["message_text"], "<h2>")
}

func TestContactServiceSubmitValidation(t *testing.T) {
	sender := &stubSender{}
	svc := NewContactService(sender, slog.Default())

	form := validForm()
	form.Email = "not-an-email"
	form.Message = "hi"

	_, err := svc.Submit(context.Background(), form)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"Please enter a valid email address",
		"Please enter a message (at least 10 characters)",
	}, verr.Messages)
	assert.Empty(t, sender.sent)
}

func TestContactServiceSubmitSendFailure(t *testing.T) {
	sendErr := errors.New("provider down")
	svc := NewContactService(&stubSender{err: sendErr}, slog.Default())

	_, err := svc.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, sendErr)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}
