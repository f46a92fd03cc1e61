package web

import (
	"errors"
	"net/http"

	"github.com/vbonduro/amblitz/internal/contact"
	"github.com/vbonduro/amblitz/internal/service"
)

const (
	msgContactSuccess = "Thank you for your message! We will get back to you soon."
	msgContactFailure = "Sorry, there was an error sending your message. Please try again later."
)

var contactFormFiles = []string{"partials/contact_form.html", "partials/form_message.html"}

// formMessage is the status box shown under the contact form.
type formMessage struct {
	Type  string
	Lines []string
}

type fieldError struct {
	OK      bool
	Message string
}

func (s *Server) handleContactPage(w http.ResponseWriter, r *http.Request) {
	s.renderContact(w, r, http.StatusOK, contact.Form{}, nil)
}

func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := contact.Form{
		FirstName: r.PostFormValue(contact.FieldFirstName),
		LastName:  r.PostFormValue(contact.FieldLastName),
		Email:     r.PostFormValue(contact.FieldEmail),
		Message:   r.PostFormValue(contact.FieldMessage),
	}

	_, err := s.contact.Submit(r.Context(), form)

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		s.renderContact(w, r, http.StatusUnprocessableEntity, form,
			&formMessage{Type: "error", Lines: verr.Messages})
	case err != nil:
		s.logger.Error("contact submission failed", "error", err)
		s.renderContact(w, r, http.StatusBadGateway, form,
			&formMessage{Type: "error", Lines: []string{msgContactFailure}})
	default:
		w.Header().Set("X-Form-Status", "success")
		s.renderContact(w, r, http.StatusOK, contact.Form{},
			&formMessage{Type: "success", Lines: []string{msgContactSuccess}})
	}
}

// renderContact answers HTMX requests with a fragment and everything else
// with the full page. HTMX does not swap error responses, so those always get
// 200 with the failure carried in the message box. A successful HTMX submit
// swaps the whole form for an empty one.
func (s *Server) renderContact(w http.ResponseWriter, r *http.Request, status int, form contact.Form, msg *formMessage) {
	content := map[string]any{"Form": form, "Message": msg}

	if isHTMX(r) {
		name, data, files := "form-message", any(msg), []string{"partials/form_message.html"}
		if msg != nil && msg.Type == "success" {
			w.Header().Set("HX-Retarget", "#contact-form")
			w.Header().Set("HX-Reswap", "outerHTML")
			name, data, files = "contact-form", content, contactFormFiles
		}
		if err := s.renderPartial(w, http.StatusOK, name, data, files...); err != nil {
			s.logger.Error("render partial failed", "partial", name, "error", err)
		}
		return
	}

	page := s.newPage(r, "Contact", content)
	if err := s.renderPage(w, status, page, append([]string{"pages/contact.html"}, contactFormFiles...)...); err != nil {
		s.logger.Error("render page failed", "page", "contact", "error", err)
	}
}

// handleValidateField checks one field as the visitor leaves it. The request
// names the field in "field" and carries the form values alongside.
func (s *Server) handleValidateField(w http.ResponseWriter, r *http.Request) {
	field := r.FormValue("field")
	value := r.FormValue("value")
	if value == "" {
		value = r.FormValue(field)
	}

	ok, message := contact.ValidateField(field, value)
	if err := s.renderPartial(w, http.StatusOK, "field-error", fieldError{OK: ok, Message: message},
		"partials/field_error.html",
	); err != nil {
		s.logger.Error("render partial failed", "partial", "field-error", "error", err)
	}
}
