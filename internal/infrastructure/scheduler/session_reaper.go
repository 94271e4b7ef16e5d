package scheduler

import (
	"context"
	"time"

	"github.com/makelifebetter/storefront-service/internal/application/sessions"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/monitoring"
	"github.com/makelifebetter/storefront-service/internal/pkg/logger"
)

// SessionReaper discards checkout sessions abandoned past their TTL, the
// server-side equivalent of the storefront closing a stale checkout modal.
type SessionReaper struct {
	sessions *sessions.Manager
	logger   *logger.Logger
	interval time.Duration
	stopChan chan struct{}
}

func NewSessionReaper(sessionManager *sessions.Manager, log *logger.Logger, interval time.Duration) *SessionReaper {
	return &SessionReaper{
		sessions: sessionManager,
		logger:   log,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (r *SessionReaper) Start(ctx context.Context) {
	r.logger.Info("Starting checkout session reaper", "interval", r.interval.String())

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Session reaper stopped")
			return
		case <-r.stopChan:
			r.logger.Info("Session reaper stopped")
			return
		case <-ticker.C:
			if pruned := r.sessions.PruneExpired(); pruned > 0 {
				r.logger.Info("Pruned expired checkout sessions", "count", pruned)
			}
			monitoring.UpdateActiveSessions(r.sessions.Len())
		}
	}
}

func (r *SessionReaper) Stop() {
	close(r.stopChan)
}
