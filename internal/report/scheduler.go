package report

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	pkgLog "pelangi-assistant/pkg/log"
)

// Runner is the job a Scheduler triggers.
type Runner interface {
	Run(ctx context.Context, date string) (Result, error)
}

// Scheduler triggers a Runner on a cron schedule in a fixed timezone.
type Scheduler struct {
	cron   *cron.Cron
	loc    *time.Location
	runner Runner
	l      pkgLog.Logger
}

// NewScheduler parses a standard 5-field cron spec evaluated in loc.
func NewScheduler(spec string, loc *time.Location, runner Runner, l pkgLog.Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	s := &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		loc:    loc,
		runner: runner,
		l:      l,
	}
	if _, err := s.cron.AddFunc(spec, s.fire); err != nil {
		return nil, fmt.Errorf("%s: %q: %w: %v", LogPrefixSchedule, spec, ErrInvalidSchedule, err)
	}
	return s, nil
}

// Next returns the next scheduled run time.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Schedule.Next(time.Now().In(s.loc))
}

// Start runs the schedule until ctx is done, then waits for a running job.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	s.l.Infof(ctx, "%s: started, next run at %s", LogPrefixSchedule, s.Next().Format(time.RFC3339))
	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.l.Infof(ctx, "%s: stopped", LogPrefixSchedule)
}

func (s *Scheduler) fire() {
	ctx := context.Background()
	if _, err := s.runner.Run(ctx, ""); err != nil {
		s.l.Errorf(ctx, "%s: scheduled run failed: %v", LogPrefixSchedule, err)
	}
}
