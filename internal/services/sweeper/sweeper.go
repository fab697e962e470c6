// Package sweeper ends giveaways whose deadline has passed.
package sweeper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KirkDiggler/giveaway-bot/internal/common/logger"
	lockRepo "github.com/KirkDiggler/giveaway-bot/internal/repositories/lock"
	giveawayService "github.com/KirkDiggler/giveaway-bot/internal/services/giveaway"
)

const (
	// DefaultSchedule runs a sweep every minute
	DefaultSchedule = "@every 1m"

	// lockName is shared by every bot process sweeping the same database
	lockName = "giveaway_sweep"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/KirkDiggler/giveaway-bot/internal/services/sweeper Publisher

// Publisher shows the outcome of an ended giveaway to the guild
type Publisher interface {
	PublishEnded(ctx context.Context, result *giveawayService.EndGiveawayOutput) error
}

// Config holds configuration for the sweeper
type Config struct {
	GiveawayService giveawayService.Service
	Publisher       Publisher

	// Locker is optional; when set only the lease holder sweeps
	Locker  lockRepo.Repository
	LockTTL time.Duration

	// Schedule is a cron spec, DefaultSchedule when empty
	Schedule string

	// RunTimeout bounds a single sweep
	RunTimeout time.Duration
}

// Result summarises one sweep
type Result struct {
	Expired   int
	Finalized int
	Failed    int

	// Skipped is set when another process holds the sweep lock
	Skipped bool
}

// Sweeper periodically finalizes expired giveaways
type Sweeper struct {
	giveaways  giveawayService.Service
	publisher  Publisher
	locker     lockRepo.Repository
	lockTTL    time.Duration
	schedule   string
	runTimeout time.Duration
	cron       *cron.Cron
}

// New creates a new sweeper
func New(cfg *Config) (*Sweeper, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GiveawayService == nil {
		return nil, errors.New("giveaway service cannot be nil")
	}

	if cfg.Publisher == nil {
		return nil, errors.New("publisher cannot be nil")
	}

	if cfg.Locker != nil && cfg.LockTTL <= 0 {
		return nil, errors.New("lock TTL must be positive when a locker is set")
	}

	schedule := cfg.Schedule
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	runTimeout := cfg.RunTimeout
	if runTimeout <= 0 {
		runTimeout = 50 * time.Second
	}

	return &Sweeper{
		giveaways:  cfg.GiveawayService,
		publisher:  cfg.Publisher,
		locker:     cfg.Locker,
		lockTTL:    cfg.LockTTL,
		schedule:   schedule,
		runTimeout: runTimeout,
	}, nil
}

// Start schedules the sweeper. Runs never overlap: a tick that fires while the
// previous sweep is still going is skipped.
func (s *Sweeper) Start() error {
	cronLog := cronLogger{}
	s.cron = cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)

	if _, err := s.cron.AddJob(s.schedule, s); err != nil {
		return fmt.Errorf("failed to schedule sweeper: %w", err)
	}

	s.cron.Start()
	logger.Info().Str("schedule", s.schedule).Msg("Giveaway sweeper started")

	return nil
}

// Stop stops scheduling and waits for a running sweep to finish
func (s *Sweeper) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	logger.Info().Msg("Giveaway sweeper stopped")
}

// Run implements cron.Job
func (s *Sweeper) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
	defer cancel()

	result, err := s.Sweep(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Giveaway sweep failed")
		return
	}

	if result.Expired > 0 {
		logger.Info().
			Int("expired", result.Expired).
			Int("finalized", result.Finalized).
			Int("failed", result.Failed).
			Msg("Giveaway sweep finished")
	}
}

// Sweep ends every expired giveaway once. Each giveaway is handled on its own:
// a failure is logged and counted, and the remaining giveaways are still ended.
func (s *Sweeper) Sweep(ctx context.Context) (*Result, error) {
	if s.locker != nil {
		lease, err := s.locker.Acquire(ctx, &lockRepo.AcquireInput{
			Name: lockName,
			TTL:  s.lockTTL,
		})
		if err != nil {
			if errors.Is(err, lockRepo.ErrLockHeld) {
				logger.Debug().Msg("Sweep lock held elsewhere, skipping run")
				return &Result{Skipped: true}, nil
			}
			// finalization is conditional in the store, so sweeping unlocked is safe
			logger.Warn().Err(err).Msg("Sweep lock unavailable, sweeping without it")
		}
		if lease != nil {
			defer func() {
				if err := s.locker.Release(context.Background(), &lockRepo.ReleaseInput{Lease: lease}); err != nil {
					logger.Warn().Err(err).Msg("Failed to release sweep lock")
				}
			}()
		}
	}

	expired, err := s.giveaways.ListExpiredGiveaways(ctx, &giveawayService.ListExpiredGiveawaysInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list expired giveaways: %w", err)
	}

	result := &Result{Expired: len(expired.Giveaways)}
	for _, g := range expired.Giveaways {
		ended, err := s.giveaways.EndGiveaway(ctx, &giveawayService.EndGiveawayInput{
			GiveawayID: g.ID,
		})
		if err != nil {
			if errors.Is(err, giveawayService.ErrGiveawayNotActive) {
				// cancelled or ended since it was listed
				logger.Debug().Uint("giveaway_id", g.ID).Msg("Giveaway no longer active, skipping")
				continue
			}
			result.Failed++
			logger.Error().Err(err).Uint("giveaway_id", g.ID).Msg("Failed to end giveaway")
			continue
		}
		result.Finalized++

		if err := s.publisher.PublishEnded(ctx, ended); err != nil {
			logger.Error().
				Err(err).
				Uint("giveaway_id", g.ID).
				Str("channel_id", g.ChannelID).
				Str("message_id", g.MessageID).
				Msg("Failed to publish ended giveaway")
		}
	}

	return result, nil
}

// cronLogger routes cron's own messages through zerolog
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
