package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContactSendRelaysMessage(t *testing.T) {
	mailer := &stubMailer{}
	svc, err := NewContactService(mailer, "owner@example.com")
	require.NoError(t, err)

	err = svc.Send(context.Background(), ContactInput{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hi there",
	})
	require.NoError(t, err)

	messages := mailer.sent()
	require.Len(t, messages, 1)
	require.Equal(t, []string{"owner@example.com"}, messages[0].To)
	require.Contains(t, messages[0].Subject, "Ada")
	require.Contains(t, messages[0].Body, "ada@example.com")
	require.Contains(t, messages[0].Body, "Hi there")
}

func TestContactSendFailuresAreHardErrors(t *testing.T) {
	mailer := &stubMailer{err: errors.New("smtp down")}
	svc, err := NewContactService(mailer, "owner@example.com")
	require.NoError(t, err)

	err = svc.Send(context.Background(), ContactInput{Name: "Ada", Email: "a@example.com", Message: "x"})
	requireAppCode(t, err, "EMAIL_DELIVERY_FAILED")
}

func TestContactSendValidatesInput(t *testing.T) {
	svc, err := NewContactService(&stubMailer{}, "owner@example.com")
	require.NoError(t, err)

	err = svc.Send(context.Background(), ContactInput{Name: " ", Email: "", Message: ""})
	requireAppCode(t, err, "BAD_REQUEST")
}
