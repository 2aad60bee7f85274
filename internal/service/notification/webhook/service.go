package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/b3watch/stock-alert/internal/service/notification"
)

var _ notification.Notifier = (*Service)(nil)

// Service posts alerts to a Discord-compatible webhook URL as a JSON
// payload with a single "content" field.
type Service struct {
	cli *http.Client
	url string
}

func NewService(url string) *Service {
	return &Service{
		cli: &http.Client{Timeout: 10 * time.Second},
		url: url,
	}
}

func (s *Service) Send(ctx context.Context, msg notification.Message) error {
	payload, err := json.Marshal(map[string]string{
		"content": fmt.Sprintf("**%s**\n%s", msg.Title, msg.Body),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.cli.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	slog.Info("webhook sent", "title", msg.Title)
	return nil
}

func (s *Service) Name() string {
	return "webhook"
}
