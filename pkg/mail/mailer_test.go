package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSMTPClient struct {
	from    string
	rcpts   []string
	data    bytes.Buffer
	quit    bool
	authed  bool
	mailErr error
}

func (f *fakeSMTPClient) Mail(from string) error {
	if f.mailErr != nil {
		return f.mailErr
	}
	f.from = from
	return nil
}

func (f *fakeSMTPClient) Rcpt(addr string) error {
	f.rcpts = append(f.rcpts, addr)
	return nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func (f *fakeSMTPClient) Data() (io.WriteCloser, error) { return nopWriteCloser{&f.data}, nil }
func (f *fakeSMTPClient) Quit() error                   { f.quit = true; return nil }
func (f *fakeSMTPClient) Close() error                  { return nil }
func (f *fakeSMTPClient) StartTLS(*tls.Config) error    { return nil }
func (f *fakeSMTPClient) Auth(smtp.Auth) error          { f.authed = true; return nil }
func (f *fakeSMTPClient) Extension(string) (bool, string) {
	return false, ""
}

func newFakeMailer(t *testing.T, cfg SMTPSettings) (*smtpMailer, *fakeSMTPClient) {
	t.Helper()
	mailer, err := NewSMTPMailer(cfg)
	require.NoError(t, err)

	client := &fakeSMTPClient{}
	impl := mailer.(*smtpMailer)
	impl.dialFn = func(context.Context, SMTPSettings) (net.Conn, smtpClient, error) {
		server, conn := net.Pipe()
		go func() { _, _ = io.Copy(io.Discard, server) }()
		return conn, client, nil
	}
	return impl, client
}

func enabledSettings() SMTPSettings {
	return SMTPSettings{
		Enabled: true,
		Host:    "smtp.example.com",
		Port:    587,
		From:    "portfolio@example.com",
	}
}

func TestSendDeliversFormattedMessage(t *testing.T) {
	mailer, client := newFakeMailer(t, enabledSettings())

	err := mailer.Send(context.Background(), Message{
		To:      []string{"admin@example.com", "admin@example.com", " "},
		Subject: "Your Verification Code",
		Body:    "Your verification code is: 123456",
	})
	require.NoError(t, err)

	require.Equal(t, "portfolio@example.com", client.from)
	require.Equal(t, []string{"admin@example.com"}, client.rcpts)
	require.True(t, client.quit)

	raw := client.data.String()
	require.Contains(t, raw, "Subject: Your Verification Code\r\n")
	require.Contains(t, raw, "Content-Type: text/plain; charset=UTF-8")
	// Headers and body are separated by a blank line.
	require.Contains(t, raw, "\r\n\r\nYour verification code is: 123456")
}

func TestSendEscapesHeaderInjection(t *testing.T) {
	mailer, client := newFakeMailer(t, enabledSettings())

	err := mailer.Send(context.Background(), Message{
		To:      []string{"admin@example.com"},
		Subject: "Hi\r\nBcc: victim@example.com",
		Body:    "body",
	})
	require.NoError(t, err)

	raw := client.data.String()
	require.NotContains(t, raw, "Bcc: victim@example.com\r\n")
	require.True(t, strings.Contains(raw, "Subject: Hi Bcc: victim@example.com"))
}

func TestSendWhenDisabledReturnsSentinel(t *testing.T) {
	mailer, err := NewSMTPMailer(SMTPSettings{Enabled: false})
	require.NoError(t, err)

	err = mailer.Send(context.Background(), Message{To: []string{"a@example.com"}, Subject: "s", Body: "b"})
	require.ErrorIs(t, err, ErrSMTPDisabled)
}

func TestSendValidatesAddresses(t *testing.T) {
	mailer, _ := newFakeMailer(t, enabledSettings())

	err := mailer.Send(context.Background(), Message{To: nil, Subject: "s", Body: "b"})
	require.Error(t, err)

	err = mailer.Send(context.Background(), Message{To: []string{"not-an-address"}, Subject: "s", Body: "b"})
	require.Error(t, err)
}

func TestNewSMTPMailerRequiresHostWhenEnabled(t *testing.T) {
	_, err := NewSMTPMailer(SMTPSettings{Enabled: true})
	require.Error(t, err)

	_, err = NewSMTPMailer(SMTPSettings{Enabled: true, Host: "smtp.example.com"})
	require.Error(t, err)
}
