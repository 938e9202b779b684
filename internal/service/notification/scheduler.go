package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/pantrywatch-backend/internal/config"
	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

// cronEngine is the trigger registration capability. *cron.Cron satisfies it.
type cronEngine interface {
	AddFunc(spec string, cmd func()) (cron.EntryID, error)
	Remove(id cron.EntryID)
	Entries() []cron.Entry
	Start()
	Stop() context.Context
}

// passRunner runs one fan-out pass.
type passRunner interface {
	RunPass(ctx context.Context, kind domain.NotificationKind) PassReport
}

// Job is an additional timed trigger registered alongside the notification
// triggers, e.g. verification code cleanup.
type Job struct {
	Name string
	Spec string
	Run  func(ctx context.Context) error
}

// TriggerStatus describes a registered trigger.
type TriggerStatus struct {
	Name string    `json:"name"`
	Spec string    `json:"spec"`
	Next time.Time `json:"next"`
	Prev time.Time `json:"prev"`
}

type registration struct {
	id   cron.EntryID
	name string
	spec string
}

// Scheduler owns the timed triggers. The only state it holds is the set of
// registered trigger handles.
type Scheduler struct {
	log     *slog.Logger
	runner  passRunner
	cron    cronEngine
	enabled bool
	specs   map[domain.NotificationKind]string
	jobs    []Job

	mu         sync.Mutex
	registered []registration
	started    bool
	cancelRun  context.CancelFunc
}

// NewScheduler creates a scheduler for the three notification kinds plus the
// given extra jobs. Nothing is registered until Initialize. When
// notifications are disabled only the extra jobs are registered.
func NewScheduler(logger *slog.Logger, runner passRunner, cfg config.NotificationsConfig, jobs ...Job) *Scheduler {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	log := logger.With("service", "scheduler")
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(log.Handler(), slog.LevelError))
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	return &Scheduler{
		log:     log,
		runner:  runner,
		cron:    c,
		enabled: cfg.Enabled,
		specs: map[domain.NotificationKind]string{
			domain.KindDailyDigest:   cfg.DailyDigestSchedule,
			domain.KindWeeklyDigest:  cfg.WeeklyDigestSchedule,
			domain.KindWeeklySummary: cfg.WeeklySummarySchedule,
		},
		jobs: jobs,
	}
}

// Initialize registers every trigger and starts the clock. Calling it again
// while running is a no-op. If any registration fails nothing stays
// registered. Passes run on a context detached from ctx's cancellation so
// they are stopped only by Stop.
func (s *Scheduler) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	if s.enabled {
		for _, kind := range domain.NotificationKinds {
			spec := s.specs[kind]
			if err := s.register(kind.String(), spec, func() {
				s.runner.RunPass(runCtx, kind)
			}); err != nil {
				s.unregisterAll()
				cancel()
				return err
			}
		}
	}

	for _, job := range s.jobs {
		if err := s.register(job.Name, job.Spec, func() {
			if err := job.Run(runCtx); err != nil {
				s.log.ErrorContext(runCtx, "scheduled job failed",
					slog.String("job", job.Name),
					slog.String("error", err.Error()),
				)
			}
		}); err != nil {
			s.unregisterAll()
			cancel()
			return err
		}
	}

	s.cron.Start()
	s.started = true
	s.cancelRun = cancel

	s.log.InfoContext(ctx, "scheduler started", slog.Int("triggers", len(s.registered)))

	return nil
}

func (s *Scheduler) register(name, spec string, fn func()) error {
	id, err := s.cron.AddFunc(spec, fn)
	if err != nil {
		return fmt.Errorf("register trigger %s (%q): %w", name, spec, err)
	}
	s.registered = append(s.registered, registration{id: id, name: name, spec: spec})
	s.log.Info("trigger registered", slog.String("trigger", name), slog.String("schedule", spec))
	return nil
}

func (s *Scheduler) unregisterAll() {
	for _, r := range s.registered {
		s.cron.Remove(r.id)
	}
	s.registered = nil
}

// Stop cancels every registered trigger and waits for in-flight runs to
// finish or for ctx to expire, whichever comes first. On expiry the running
// passes see their context cancelled. Stop is safe to call without
// Initialize and more than once.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	done := s.cron.Stop()
	s.unregisterAll()
	s.started = false
	cancel := s.cancelRun
	s.cancelRun = nil
	s.mu.Unlock()

	defer cancel()

	select {
	case <-done.Done():
		s.log.InfoContext(ctx, "scheduler stopped")
		return nil
	case <-ctx.Done():
		s.log.WarnContext(ctx, "scheduler stop timed out, cancelling running passes")
		return ctx.Err()
	}
}

// Running reports whether triggers are registered.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Entries lists the registered triggers in registration order with their
// next and previous fire times.
func (s *Scheduler) Entries() []TriggerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[cron.EntryID]cron.Entry)
	for _, e := range s.cron.Entries() {
		byID[e.ID] = e
	}

	out := make([]TriggerStatus, 0, len(s.registered))
	for _, r := range s.registered {
		st := TriggerStatus{Name: r.name, Spec: r.spec}
		if e, ok := byID[r.id]; ok {
			st.Next = e.Next
			st.Prev = e.Prev
		}
		out = append(out, st)
	}
	return out
}
