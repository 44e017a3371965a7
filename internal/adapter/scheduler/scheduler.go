// Package scheduler runs the daily courier pickup batch.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"commerce-reconciler/config"
	"commerce-reconciler/internal/core/ports"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

const (
	pickupJobName = "pickup-batch"
	jobTimeout    = 2 * time.Minute
)

// Scheduler owns the gocron scheduler and its jobs.
type Scheduler struct {
	inner   gocron.Scheduler
	batcher ports.PickupBatcher
	log     zerolog.Logger
}

// ParseTriggerTime parses "HH:MM" or "HH:MM:SS".
func ParseTriggerTime(s string) (hour, minute, second uint, err error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, perr := time.Parse(layout, s); perr == nil {
			return uint(t.Hour()), uint(t.Minute()), uint(t.Second()), nil
		}
	}
	return 0, 0, 0, fmt.Errorf("invalid trigger time %q, want HH:MM", s)
}

// New registers the daily pickup job at cfg.TriggerTime in cfg.Timezone.
// The job never overlaps itself; a run still going at the next trigger
// pushes that trigger back.
func New(cfg config.PickupConfig, batcher ports.PickupBatcher, log zerolog.Logger) (*Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading pickup timezone: %w", err)
	}
	h, m, sec, err := ParseTriggerTime(cfg.TriggerTime)
	if err != nil {
		return nil, err
	}

	inner, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}

	s := &Scheduler{
		inner:   inner,
		batcher: batcher,
		log:     log.With().Str("component", "scheduler").Logger(),
	}

	_, err = inner.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(h, m, sec))),
		gocron.NewTask(s.runPickupBatch),
		gocron.WithName(pickupJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("registering pickup job: %w", err)
	}
	return s, nil
}

func (s *Scheduler) runPickupBatch() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	res, err := s.batcher.SelectAndSchedule(ctx)
	if err != nil {
		s.log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("pickup batch failed")
		return
	}
	s.log.Info().
		Bool("scheduled", res.Scheduled).
		Int("count", res.Count).
		Dur("elapsed", time.Since(start)).
		Msg("pickup batch finished")
}

// Start begins running jobs in the background.
func (s *Scheduler) Start() {
	s.inner.Start()
	for _, j := range s.inner.Jobs() {
		next, _ := j.NextRun()
		s.log.Info().Str("job", j.Name()).Time("next_run", next).Msg("job scheduled")
	}
}

// RunPickupNow triggers the pickup job outside its schedule.
func (s *Scheduler) RunPickupNow() error {
	for _, j := range s.inner.Jobs() {
		if j.Name() == pickupJobName {
			return j.RunNow()
		}
	}
	return fmt.Errorf("job %q not registered", pickupJobName)
}

// Shutdown stops the scheduler and waits for running jobs.
func (s *Scheduler) Shutdown() error {
	return s.inner.Shutdown()
}
