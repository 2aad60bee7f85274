package notification

import "context"

// Message is one outbound alert, already composed by the monitor.
type Message struct {
	Title string
	Body  string
}

// Notifier delivers a message through a single channel. Implementations
// handle their own transport; the monitor treats a returned error as a
// failure of that channel only.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
	Name() string
}
