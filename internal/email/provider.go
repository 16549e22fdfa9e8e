package email

// Provider sends transactional mail. Only a welcome message exists today.
type Provider interface {
	SendWelcome(to, name string) error
}

// NoopProvider is used when no SMTP host is configured; registration
// proceeds without sending anything.
type NoopProvider struct{}

func (p *NoopProvider) SendWelcome(to, name string) error {
	return nil
}
