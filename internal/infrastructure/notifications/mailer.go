package notifications

import (
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"
)

// Mailer delivers a single message. Implementations may block; the
// dispatcher keeps them off the request path.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer implements Mailer over SMTP.
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewSMTPMailer creates a new SMTP mailer.
func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass, from: from}
}

// Send delivers one message synchronously.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if m.host == "" || m.from == "" {
		return fmt.Errorf("mail config missing")
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("empty recipient")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
