package properties

import (
	"context"
	"log"
	"time"
)

// Refresher periodically re-ingests the remote CSV sources. It lives in
// the application shell: the ingestion core holds no timers and no
// global state, the scheduler just calls the same Refresh the handlers
// use.
type Refresher struct {
	server   *Server
	interval time.Duration
}

// NewRefresher creates a refresher for the given server
func NewRefresher(server *Server, interval time.Duration) *Refresher {
	return &Refresher{server: server, interval: interval}
}

// Run refreshes once immediately, then on every tick until the context
// is cancelled. Overlapping refreshes are not an issue for readers
// (snapshots are published atomically), so no in-flight deduplication
// is attempted.
func (r *Refresher) Run(ctx context.Context) {
	if result := r.server.Refresh(); !result.Success {
		log.Printf("Initial property refresh failed: %s", result.Error)
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if result := r.server.Refresh(); !result.Success {
				log.Printf("Scheduled property refresh failed: %s", result.Error)
			}
		}
	}
}
