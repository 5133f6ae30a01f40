package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"blendfolio/internal/catalog"
)

// Scheduler runs periodic catalog refreshes.
type Scheduler struct {
	cron      *cron.Cron
	refresher *catalog.Refresher
	ctx       context.Context
}

func New(ctx context.Context, refresher *catalog.Refresher) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		refresher: refresher,
		ctx:       ctx,
	}
}

// Register adds the refresh task under the given cron expression.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes the refresh task immediately.
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Info().Msg("running catalog refresh")
	if err := s.refresher.Refresh(s.ctx); err != nil {
		log.Error().Err(err).Msg("catalog refresh failed")
	}
}
