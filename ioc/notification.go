package ioc

import (
	"fmt"
	"net/mail"

	"github.com/b3watch/stock-alert/internal/service/notification"
	"github.com/b3watch/stock-alert/internal/service/notification/email"
	"github.com/b3watch/stock-alert/internal/service/notification/webhook"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// InitNotifiers builds one notifier per enabled channel, in the order
// they are configured. With no channels enabled alerts go to the console
// only.
func InitNotifiers() []notification.Notifier {
	type Config struct {
		Channels []string     `mapstructure:"channels"`
		Email    email.Config `mapstructure:"email"`
		Webhook  struct {
			URL string `mapstructure:"url"`
		} `mapstructure:"webhook"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("notification", &cfg); err != nil {
		panic(err)
	}

	if len(cfg.Channels) == 0 {
		return []notification.Notifier{notification.NewConsoleNotifier()}
	}

	return lo.Map(cfg.Channels, func(channel string, _ int) notification.Notifier {
		switch channel {
		case "email":
			if _, err := mail.ParseAddress(cfg.Email.To); err != nil {
				panic(fmt.Sprintf("invalid notify email %q: %v", cfg.Email.To, err))
			}
			return email.NewService(cfg.Email)
		case "webhook":
			if cfg.Webhook.URL == "" {
				panic("webhook channel enabled but no url configured")
			}
			return webhook.NewService(cfg.Webhook.URL)
		case "console":
			return notification.NewConsoleNotifier()
		default:
			panic(fmt.Sprintf("unknown notification channel: %s", channel))
		}
	})
}
