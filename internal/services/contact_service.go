package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appErrors "github.com/bolajio/portfolio-api/pkg/errors"
	"github.com/bolajio/portfolio-api/pkg/mail"
)

// ContactService relays contact form submissions to the site owner's inbox.
type ContactService struct {
	mailer    mail.Mailer
	recipient string
}

// NewContactService constructs a ContactService.
func NewContactService(mailer mail.Mailer, recipient string) (*ContactService, error) {
	if mailer == nil {
		return nil, errors.New("contact service: mailer is required")
	}
	return &ContactService{mailer: mailer, recipient: recipient}, nil
}

// ContactInput captures a contact form submission.
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Send relays the message by email. Unlike order and booking notifications
// there is no stored record, so a failed send is a hard error.
func (s *ContactService) Send(ctx context.Context, input ContactInput) error {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	body := strings.TrimSpace(input.Message)
	if name == "" || email == "" || body == "" {
		return appErrors.NewBadRequest("name, email and message are required")
	}
	if s.recipient == "" {
		return appErrors.ErrMailDelivery
	}

	message := mail.Message{
		To:      []string{s.recipient},
		Subject: fmt.Sprintf("Contact Form: %s", name),
		Body:    fmt.Sprintf("From: %s <%s>\n\n%s\n", name, email, body),
	}
	if err := s.mailer.Send(ctx, message); err != nil {
		return appErrors.ErrMailDelivery.WithInternal(err)
	}
	return nil
}
