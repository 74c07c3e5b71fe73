package email

import (
	"elgrace_backend/internal/config"

	"gopkg.in/gomail.v2"
)

type GomailProvider struct {
	dialer *gomail.Dialer
	from   string
}

func NewGomailProvider(cfg config.EmailConfig) *GomailProvider {
	return &GomailProvider{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (p *GomailProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return p.dialer.DialAndSend(m)
}
