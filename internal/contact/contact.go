package contact

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field names as posted by the contact form.
const (
	FieldFirstName = "first-name"
	FieldLastName  = "last-name"
	FieldEmail     = "email"
	FieldMessage   = "message"
)

const (
	minNameLen    = 2
	minMessageLen = 10
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form is a submitted contact form.
type Form struct {
	FirstName string
	LastName  string
	Email     string
	Message   string
}

// Email is one outbound message. TemplateParams are substituted into the
// provider-side template.
type Email struct {
	TemplateParams map[string]string
}

// Sender delivers contact emails. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateForm returns the problems with f in display order; an empty result
// means the form can be sent.
func ValidateForm(f Form) []string {
	var errs []string
	if trimmedLen(f.FirstName) < minNameLen {
		errs = append(errs, "Please enter a valid first name (at least 2 characters)")
	}
	if trimmedLen(f.LastName) < minNameLen {
		errs = append(errs, "Please enter a valid last name (at least 2 characters)")
	}
	if f.Email == "" || !ValidateEmail(f.Email) {
		errs = append(errs, "Please enter a valid email address")
	}
	if trimmedLen(f.Message) < minMessageLen {
		errs = append(errs, "Please enter a message (at least 10 characters)")
	}
	return errs
}

// ValidateField checks a single field for inline feedback. Empty values are
// reported as valid so that no error shows before the visitor types.
// Unknown fields are always valid.
func ValidateField(field, value string) (bool, string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return true, ""
	}

	switch field {
	case FieldFirstName, FieldLastName:
		if utf8.RuneCountInString(value) < minNameLen {
			return false, "Please enter at least 2 characters"
		}
	case FieldEmail:
		if !ValidateEmail(value) {
			return false, "Please enter a valid email address"
		}
	case FieldMessage:
		if utf8.RuneCountInString(value) < minMessageLen {
			return false, "Please enter at least 10 characters"
		}
	}
	return true, ""
}

func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}
