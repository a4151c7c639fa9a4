package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"listing_sync/internal/domain"
)

// Syncer runs one full sync.
type Syncer interface {
	Run(ctx context.Context) (*domain.FullSyncResult, error)
}

type Config struct {
	Interval   time.Duration
	Cron       string
	RunTimeout time.Duration
}

// Scheduler triggers the full sync on a cron expression or a fixed interval.
// Cron wins when both are set.
type Scheduler struct {
	syncer Syncer
	cfg    Config
	logger *slog.Logger
}

func NewScheduler(syncer Syncer, cfg Config, logger *slog.Logger) *Scheduler {
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = 10 * time.Minute
	}
	return &Scheduler{
		syncer: syncer,
		cfg:    cfg,
		logger: logger.With("component", "scheduler"),
	}
}

// Enabled reports whether any schedule is configured.
func (s *Scheduler) Enabled() bool {
	return s.cfg.Cron != "" || s.cfg.Interval > 0
}

// Start blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	switch {
	case s.cfg.Cron != "":
		return s.startCron(ctx)
	case s.cfg.Interval > 0:
		return s.startTicker(ctx)
	}

	s.logger.Info("no schedule configured, syncs run on request only")
	<-ctx.Done()
	return ctx.Err()
}

func (s *Scheduler) startCron(ctx context.Context) error {
	logger := cronLogger{s.logger}
	c := cron.New(cron.WithChain(
		cron.Recover(logger),
		cron.SkipIfStillRunning(logger),
	))

	if _, err := c.AddFunc(s.cfg.Cron, func() { s.runSync(ctx) }); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", s.cfg.Cron, err)
	}

	s.logger.Info("scheduler started", "cron", s.cfg.Cron)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) startTicker(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.cfg.Interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, s.cfg.RunTimeout)
	defer cancel()

	result, err := s.syncer.Run(syncCtx)
	if err != nil {
		s.logger.Error("scheduled sync failed", "error", err)
		return
	}

	args := make([]any, 0, 12)
	args = append(args, counts(domain.EntityAgents, result.Agents)...)
	args = append(args, counts(domain.EntityProperties, result.Properties)...)
	s.logger.Info("scheduled sync finished", args...)
}

func counts(entity string, r *domain.SyncResult) []any {
	if r == nil {
		return nil
	}
	return []any{
		entity + "_created", r.Created,
		entity + "_updated", r.Updated,
		entity + "_errors", r.Errors,
	}
}

// cronLogger routes robfig/cron messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
