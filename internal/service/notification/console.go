package notification

import (
	"context"
	"log/slog"
)

type consoleNotifier struct{}

// NewConsoleNotifier returns a notifier that only logs the message.
// It is the default channel when nothing else is configured.
func NewConsoleNotifier() Notifier {
	return consoleNotifier{}
}

func (consoleNotifier) Send(_ context.Context, msg Message) error {
	slog.Info("alert", "title", msg.Title, "body", msg.Body)
	return nil
}

func (consoleNotifier) Name() string {
	return "console"
}
