package mail

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
)

const (
	gmailHost = "smtp.gmail.com"
	gmailPort = 587
)

// ErrNotConfigured is returned when the relay credentials are missing or
// incomplete; callers surface this as a 503, not a 500.
var ErrNotConfigured = errors.New("mail relay not configured")

// Config holds the outbound relay credentials, loaded from the EmailConfig
// singleton document.
type Config struct {
	User        string `json:"gmailUser"`
	AppPassword string `json:"gmailAppPassword"`
}

// Complete reports whether both credentials are present.
func (c Config) Complete() bool {
	return strings.TrimSpace(c.User) != "" && strings.TrimSpace(c.AppPassword) != ""
}

// Message is a single email to send.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender sends emails through the Gmail SMTP relay.
type Sender struct {
	cfg Config
}

func New(cfg Config) *Sender {
	return &Sender{cfg: cfg}
}

// Send dispatches an email synchronously, best effort, no retry.
func (s *Sender) Send(msg Message) error {
	if !s.cfg.Complete() {
		return ErrNotConfigured
	}

	addr := fmt.Sprintf("%s:%d", gmailHost, gmailPort)
	from := s.cfg.User

	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString(fmt.Sprintf("From: %s\r\n", from))
	body.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ", ")))
	body.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	body.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	body.WriteString("\r\n")
	body.WriteString(msg.HTML)

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.AppPassword, gmailHost)
	return smtp.SendMail(addr, auth, from, msg.To, body.Bytes())
}

// ResetPasswordData fills the reset-link template.
type ResetPasswordData struct {
	Name     string
	ResetURL string
}

var resetPasswordTpl = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;background:#f5f5f5;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border-radius:8px;padding:24px">
  <h2 style="color:#333">Reset your password</h2>
  <p>Hi {{.Name}},</p>
  <p>A password reset was requested for your account. The link below is valid for one hour.</p>
  <p style="margin:24px 0">
    <a href="{{.ResetURL}}" style="background:#0ea5e9;color:#fff;padding:12px 20px;border-radius:4px;text-decoration:none">Reset password</a>
  </p>
  <p style="color:#6b7280;font-size:12px">If you did not request this, you can safely ignore this email.</p>
</div>
</body>
</html>`))

// RenderResetPassword renders the reset-link email body.
func RenderResetPassword(data ResetPasswordData) (string, error) {
	var buf bytes.Buffer
	if err := resetPasswordTpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
