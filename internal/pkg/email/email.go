package email

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"text/template"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

var (
	resetText = template.Must(template.New("reset.txt").Parse(
		"Hello {{.Name}},\n\nUse the link below to choose a new password. It expires in {{.Minutes}} minutes.\n\n" +
			"{{.URL}}\n\nIf you did not ask for a password reset you can ignore this email.\n"))

	// html/template escapes the user-supplied name and the link
	resetHTML = htmltemplate.Must(htmltemplate.New("reset.html").Parse(
		`<p>Hello {{.Name}},</p><p>Use the link below to choose a new password. It expires in {{.Minutes}} minutes.</p>` +
			`<p><a href="{{.URL}}">Reset password</a></p>` +
			`<p>If you did not ask for a password reset you can ignore this email.</p>`))
)

type resetMailData struct {
	Name    string
	URL     string
	Minutes int
}

// renderResetBodies returns the plain-text and HTML bodies of the reset email
func renderResetBodies(name, resetURL string, validFor time.Duration) (string, string, error) {
	data := resetMailData{Name: name, URL: resetURL, Minutes: int(validFor.Minutes())}

	var text, html bytes.Buffer
	if err := resetText.Execute(&text, data); err != nil {
		return "", "", fmt.Errorf("failed to render reset email text: %w", err)
	}
	if err := resetHTML.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("failed to render reset email html: %w", err)
	}
	return text.String(), html.String(), nil
}

// EmailService defines the interface for outgoing mail
type EmailService interface {
	SendPasswordResetEmail(ctx context.Context, toEmail, toName, resetURL string, validFor time.Duration) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// EmailServiceImpl sends mail through gomail. Without credentials it only logs.
type EmailServiceImpl struct {
	config SMTPConfig
	dialer *gomail.Dialer
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) *EmailServiceImpl {
	s := &EmailServiceImpl{config: config, logger: logger}
	if s.enabled() {
		s.dialer = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	}
	return s
}

func (s *EmailServiceImpl) enabled() bool {
	return s.config.Host != "" && s.config.Username != "" && s.config.Password != ""
}

// SendPasswordResetEmail mails the reset link
func (s *EmailServiceImpl) SendPasswordResetEmail(ctx context.Context, toEmail, toName, resetURL string, validFor time.Duration) error {
	if !s.enabled() {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("resetURL", resetURL).
			Msg("SMTP credentials not configured - password reset email not sent")
		return nil
	}

	if toName == "" {
		toName = toEmail
	}

	text, html, err := renderResetBodies(toName, resetURL, validFor)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.config.From)
	msg.SetAddressHeader("To", toEmail, toName)
	msg.SetHeader("Subject", "Reset your password")
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(msg) }()

	select {
	case err := <-done:
		if err != nil {
			s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send password reset email")
			return fmt.Errorf("failed to send password reset email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
