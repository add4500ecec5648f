// Package mail sends account emails over SMTP using gomail.
package mail

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"passage/config"
	"passage/internal/domain/service"
	"passage/internal/errors"

	"go.uber.org/fx"
	"gopkg.in/gomail.v2"
)

const (
	defaultSenderAddress = "no-reply@passage.local"
	defaultSenderName    = "Passage"
	defaultRetryBackoff  = 200 * time.Millisecond
	maxRetryBackoff      = 5 * time.Second
)

// dialer is the part of *gomail.Dialer the mailer needs.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Params defines the parameters required for the mailer
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type smtpMailer struct {
	dialer        dialer
	senderAddress string
	senderName    string
	baseURL       string
	retryAttempts int
	retryBackoff  time.Duration
	logger        *slog.Logger
}

// New creates an SMTP mailer from the mail section of the config.
func New(params Params) service.Mailer {
	cfg := params.Config.Mail
	if cfg == nil {
		cfg = &config.MailConfig{}
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	if cfg.InsecureSkipVerify {
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for local relays
	}

	return newSMTPMailer(d, cfg, params.Config.HTTP.BaseURL, params.Logger)
}

func newSMTPMailer(d dialer, cfg *config.MailConfig, baseURL string, logger *slog.Logger) *smtpMailer {
	m := &smtpMailer{
		dialer:        d,
		senderAddress: cfg.SenderAddress,
		senderName:    cfg.SenderName,
		baseURL:       strings.TrimRight(baseURL, "/"),
		retryAttempts: cfg.RetryAttempts,
		retryBackoff:  defaultRetryBackoff,
		logger:        logger,
	}
	if m.senderAddress == "" {
		m.senderAddress = defaultSenderAddress
	}
	if m.senderName == "" {
		m.senderName = defaultSenderName
	}
	if m.retryAttempts < 0 {
		m.retryAttempts = 0
	}

	return m
}

func (m *smtpMailer) SendVerificationEmail(ctx context.Context, email, token string) error {
	link := m.verifyLink(token)
	body := "<p>Please confirm your email address by opening the link below.</p>" +
		`<p><a href="` + link + `">` + link + "</a></p>"

	return m.send(ctx, email, "Confirm your email address", body)
}

func (m *smtpMailer) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	link := m.resetLink(token)
	body := "<p>You are receiving this email because you (or someone else) requested a password reset for your account.</p>" +
		`<p>Open <a href="` + link + `">` + link + "</a> within one hour to choose a new password.</p>" +
		"<p>If you did not request this, ignore this email and your password will remain unchanged.</p>"

	return m.send(ctx, email, "Reset your password", body)
}

func (m *smtpMailer) SendPasswordChangedEmail(ctx context.Context, email string) error {
	body := "<p>This is a confirmation that the password for your account " + email + " has just been changed.</p>"

	return m.send(ctx, email, "Your password has been changed", body)
}

func (m *smtpMailer) verifyLink(token string) string {
	return m.baseURL + "/auth/email/verify?token=" + url.QueryEscape(token)
}

func (m *smtpMailer) resetLink(token string) string {
	return m.baseURL + "/reset?token=" + url.QueryEscape(token)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.senderAddress, m.senderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	var lastErr error
	backoff := m.retryBackoff

	for attempt := 0; attempt <= m.retryAttempts; attempt++ {
		err := m.dialer.DialAndSend(msg)
		if err == nil {
			m.logger.DebugContext(ctx, "Mail sent", slog.String("subject", subject), slog.Int("attempt", attempt+1))

			return nil
		}
		lastErr = err

		if attempt == m.retryAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "mail send cancelled")
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxRetryBackoff)
	}

	return errors.Wrapf(lastErr, "send %q after %d attempts", subject, m.retryAttempts+1)
}
