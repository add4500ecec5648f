package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"passage/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	failures int
	calls    int
	messages []*gomail.Message
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	d.calls++
	if d.calls <= d.failures {
		return errors.New("smtp unavailable")
	}
	d.messages = append(d.messages, m...)

	return nil
}

func newTestMailer(d dialer, attempts int) *smtpMailer {
	m := newSMTPMailer(d, &config.MailConfig{RetryAttempts: attempts}, "http://localhost:8080/", slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.retryBackoff = time.Millisecond

	return m
}

func TestSMTPMailer_SendPasswordResetEmail(t *testing.T) {
	d := &recordingDialer{}
	m := newTestMailer(d, 0)

	require.NoError(t, m.SendPasswordResetEmail(context.Background(), "a@x.com", "abc123"))

	require.Len(t, d.messages, 1)
	msg := d.messages[0]
	assert.Equal(t, []string{"a@x.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Reset your password"}, msg.GetHeader("Subject"))
	assert.Equal(t, []string{`"Passage" <no-reply@passage.local>`}, msg.GetHeader("From"))
}

func TestSMTPMailer_Links(t *testing.T) {
	m := newTestMailer(&recordingDialer{}, 0)

	assert.Equal(t, "http://localhost:8080/reset?token=abc+123", m.resetLink("abc 123"))
	assert.Equal(t, "http://localhost:8080/auth/email/verify?token=abc", m.verifyLink("abc"))
}

func TestSMTPMailer_RetriesThenSucceeds(t *testing.T) {
	d := &recordingDialer{failures: 2}
	m := newTestMailer(d, 2)

	require.NoError(t, m.SendVerificationEmail(context.Background(), "a@x.com", "tok"))
	assert.Equal(t, 3, d.calls)
}

func TestSMTPMailer_GivesUp(t *testing.T) {
	d := &recordingDialer{failures: 10}
	m := newTestMailer(d, 1)

	err := m.SendPasswordChangedEmail(context.Background(), "a@x.com")

	assert.Error(t, err)
	assert.Equal(t, 2, d.calls)
}

func TestSMTPMailer_StopsOnCancelledContext(t *testing.T) {
	d := &recordingDialer{failures: 10}
	m := newTestMailer(d, 5)
	m.retryBackoff = time.Second
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.SendVerificationEmail(ctx, "a@x.com", "tok")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, d.calls)
}
