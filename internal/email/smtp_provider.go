package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

type SMTPProvider struct {
	cfg Config
}

func NewSMTPProvider(cfg Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) SendWelcome(to, name string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to Careero")
	m.SetBody("text/plain", welcomeBody(name))

	d := gomail.NewDialer(p.cfg.SMTPHost, p.cfg.SMTPPort, p.cfg.SMTPUsername, p.cfg.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

func welcomeBody(name string) string {
	return fmt.Sprintf(`Hi %s,

Welcome to Careero! Track your job applications, keep your profile up to
date, and generate tailored resumes and cover letters when you need them.

Good luck with the search,
The Careero team`, name)
}
