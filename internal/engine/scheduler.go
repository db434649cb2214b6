package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the pending recost on a fixed interval.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger
}

// NewScheduler creates a new Scheduler that recosts pending inspections
// every interval. Runs that would overlap a still-running one are skipped.
func NewScheduler(
	eng *Engine,
	interval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), s.runRecost); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runRecost() {
	ctx := context.Background()
	s.log.Info("scheduled recost starting")
	summary, err := s.engine.RecostPending(ctx)
	switch {
	case errors.Is(err, ErrRecostRunning):
		s.log.Info("scheduled recost skipped, manual recost in progress")
	case err != nil:
		s.log.Error("scheduled recost failed", "error", err)
	default:
		s.log.Info("scheduled recost finished", "costed", summary.Costed, "failed", summary.Failed)
	}
}
