package sideeffect

import (
	"context"
	"fmt"

	"go-legal/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	// MaxAttempts is the number of tries after which an outbox entry is dead.
	MaxAttempts     = 10
	retryBatch      = 100
	defaultSchedule = "@every 5m"
)

// RetryScheduler periodically re-drives pending outbox entries.
type RetryScheduler struct {
	dispatcher Dispatcher
	outbox     OutboxRepository
	logger     *zap.Logger
	schedule   string
	scheduler  *cron.Cron
}

func NewRetryScheduler(cfg *config.Config, dispatcher Dispatcher, outbox OutboxRepository, logger *zap.Logger) *RetryScheduler {
	schedule := cfg.SideEffectRetrySchedule
	if schedule == "" {
		schedule = defaultSchedule
	}
	return &RetryScheduler{
		dispatcher: dispatcher,
		outbox:     outbox,
		logger:     logger,
		schedule:   schedule,
	}
}

func (s *RetryScheduler) Start() error {
	s.scheduler = cron.New()
	if _, err := s.scheduler.AddFunc(s.schedule, func() {
		if _, err := s.RetryPending(context.Background()); err != nil {
			s.logger.Error("Outbox retry run failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule outbox retries: %w", err)
	}
	s.scheduler.Start()
	s.logger.Info("Side effect retry scheduler started", zap.String("schedule", s.schedule))
	return nil
}

func (s *RetryScheduler) Stop() {
	if s.scheduler != nil {
		ctx := s.scheduler.Stop()
		<-ctx.Done()
	}
}

// RetryPending makes one attempt at each pending entry and returns how many
// succeeded.
func (s *RetryScheduler) RetryPending(ctx context.Context) (int, error) {
	entries, err := s.outbox.ListPending(ctx, retryBatch)
	if err != nil {
		return 0, err
	}

	succeeded := 0
	for _, entry := range entries {
		if execErr := s.dispatcher.Execute(ctx, entry.Effect); execErr != nil {
			dead := entry.Attempts+1 >= MaxAttempts
			if err := s.outbox.RecordFailure(ctx, entry.ID, execErr.Error(), dead); err != nil {
				s.logger.Error("Failed to record outbox failure", zap.String("entry_id", entry.ID.Hex()), zap.Error(err))
			}
			if dead {
				s.logger.Warn("Side effect gave up",
					zap.String("entry_id", entry.ID.Hex()),
					zap.String("case_id", entry.Effect.CaseID),
					zap.String("kind", string(entry.Effect.Kind)),
					zap.Error(execErr),
				)
			}
			continue
		}
		if err := s.outbox.MarkDone(ctx, entry.ID); err != nil {
			s.logger.Error("Failed to mark outbox entry done", zap.String("entry_id", entry.ID.Hex()), zap.Error(err))
			continue
		}
		succeeded++
	}
	return succeeded, nil
}
