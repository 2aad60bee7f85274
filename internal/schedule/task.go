package schedule

import "context"

// Task is one unit of scheduled work. Run is invoked repeatedly by a
// runner; a returned error fails only that invocation.
type Task interface {
	Run(ctx context.Context) error
	Name() string
}
