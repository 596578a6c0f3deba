package client

import (
	"context"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type ContactStatus string

const (
	ContactIdle    ContactStatus = "idle"
	ContactSending ContactStatus = "sending"
	ContactSuccess ContactStatus = "success"
	ContactError   ContactStatus = "error"
)

const (
	contactSuccessText = "Thanks! Your message has been sent."
	contactErrorText   = "Something went wrong. Please try again."
)

type ContactFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SendMessage posts a contact message. Any non-2xx status is a failure.
func (c *Client) SendMessage(ctx context.Context, fields ContactFields) error {
	return c.doJSON(ctx, http.MethodPost, messagesPath, fields, nil)
}

// ContactForm holds the form values and the status of the last submission.
type ContactForm struct {
	client *Client

	mu     sync.Mutex
	fields ContactFields
	status ContactStatus
}

func NewContactForm(c *Client) *ContactForm {
	return &ContactForm{client: c, status: ContactIdle}
}

func (f *ContactForm) SetFields(fields ContactFields) {
	f.mu.Lock()
	f.fields = fields
	f.mu.Unlock()
}

func (f *ContactForm) Fields() ContactFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *ContactForm) Status() ContactStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// StatusText is the inline note shown under the form.
func (f *ContactForm) StatusText() string {
	switch f.Status() {
	case ContactSuccess:
		return contactSuccessText
	case ContactError:
		return contactErrorText
	}
	return ""
}

// Submit sends the current fields. It is ignored while a submission is in
// flight. On success the fields are cleared; on failure they are kept so
// the user can resubmit.
func (f *ContactForm) Submit(ctx context.Context) bool {
	f.mu.Lock()
	if f.status == ContactSending {
		f.mu.Unlock()
		return false
	}
	f.status = ContactSending
	fields := f.fields
	f.mu.Unlock()

	err := f.client.SendMessage(ctx, fields)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		zap.L().Warn("ContactForm.Submit(): message send failed", zap.Error(err))
		f.status = ContactError
		return true
	}
	f.status = ContactSuccess
	f.fields = ContactFields{}
	return true
}
