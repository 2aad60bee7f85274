package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/b3watch/stock-alert/internal/service/notification"
	"gopkg.in/gomail.v2"
)

var _ notification.Notifier = (*Service)(nil)

type Config struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	To       string `mapstructure:"to"`
}

// Service sends plain-text alerts over SMTP with STARTTLS.
type Service struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewService(cfg Config) *Service {
	return &Service{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.User,
		to:     cfg.To,
	}
}

func (s *Service) Send(_ context.Context, msg notification.Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, "Stock Alert")
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", msg.Title)
	m.SetBody("text/plain", msg.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", s.to, err)
	}
	slog.Info("email sent", "subject", msg.Title, "to", s.to)
	return nil
}

func (s *Service) Name() string {
	return "email"
}
