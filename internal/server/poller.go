package server

import (
	"context"

	"baseball-stats-service/internal/poller"
)

// Poller defines the minimal refresh-loop behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Refresh(ctx context.Context) error
	Status() poller.Status
}
