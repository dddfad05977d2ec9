package utils

import (
	"fmt"

	"authbase/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional email through the configured SMTP relay.
type Mailer struct {
	cfg       config.SMTPConfig
	clientURL string
}

func NewMailer(cfg config.SMTPConfig, clientURL string) *Mailer {
	return &Mailer{cfg: cfg, clientURL: clientURL}
}

// Send delivers one HTML message.
func (m *Mailer) Send(to []string, subject, body string) error {
	if m.cfg.Host == "" || m.cfg.Username == "" {
		return fmt.Errorf("SMTP configuration is missing")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Sender)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)

	return d.DialAndSend(msg)
}

// SendResetPasswordEmail mails the reset link for a forgot-password request.
func (m *Mailer) SendResetPasswordEmail(to, name, resetToken string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.clientURL, resetToken)
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>To reset your password, click on this link: <a href="%s">%s</a></p>
		<p>If you did not request a password reset, you can ignore this email.</p>
	`, name, link, link)
	return m.Send([]string{to}, "Reset password", body)
}

// SendVerificationEmail mails the verify-email link for a new account.
func (m *Mailer) SendVerificationEmail(to, name, verifyToken string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", m.clientURL, verifyToken)
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>To verify your email, click on this link: <a href="%s">%s</a></p>
		<p>If you did not create an account, you can ignore this email.</p>
	`, name, link, link)
	return m.Send([]string{to}, "Email verification", body)
}
