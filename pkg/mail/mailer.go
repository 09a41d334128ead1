package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers transactional email. Implementations may fail; callers
// decide whether a failed delivery is fatal for their flow.
type Sender interface {
	Send(to, subject, htmlBody, textBody string) error
}

// Config holds SMTP settings for the gomail sender.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// smtpSender implements Sender over SMTP via gomail
type smtpSender struct {
	cfg Config
}

// NewSMTPSender creates an SMTP-backed Sender
func NewSMTPSender(cfg Config) Sender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) Send(to, subject, htmlBody, textBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp delivery to %s failed: %w", to, err)
	}
	return nil
}

// noOpSender skips delivery (for local environment)
type noOpSender struct{}

func (n *noOpSender) Send(to, subject, htmlBody, textBody string) error {
	fmt.Printf("[Mail NoOp] Skipping email to %s, subject: %s\n", to, subject)
	return nil
}

// NewNoOpSender creates a no-op Sender
func NewNoOpSender() Sender {
	return &noOpSender{}
}
