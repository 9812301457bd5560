package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/limbo/dailydare/internal/metrics"
	"github.com/limbo/dailydare/pkg/cleanup"
)

const jobTimeout = time.Minute

type Reconciler interface {
	Reconcile(ctx context.Context) (bool, error)
}

type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// DailyJob keeps the dare catalog complete. Profiles are reset lazily on their owner's first request of the day
type DailyJob struct {
	catalog Reconciler
	// Optional, nil when running without redis
	cache Invalidator
}

func NewDailyJob(catalog Reconciler, cache Invalidator) *DailyJob {
	return &DailyJob{catalog: catalog, cache: cache}
}

func (j *DailyJob) Run(ctx context.Context) error {
	rewritten, err := j.catalog.Reconcile(ctx)
	if err != nil {
		metrics.DailyJobRuns.WithLabelValues("error").Inc()
		return fmt.Errorf("reconciling catalog: %w", err)
	}
	// Dropped even when nothing was rewritten, catalog may have been edited by hand
	if j.cache != nil {
		if err = j.cache.Invalidate(ctx); err != nil {
			slog.Warn("dropping catalog cache failed", slog.String("error", err.Error()))
		}
	}
	metrics.DailyJobRuns.WithLabelValues("ok").Inc()
	slog.Info("daily job finished", slog.Bool("catalog_rewritten", rewritten))
	return nil
}

type Scheduler struct {
	s   gocron.Scheduler
	job gocron.Job
}

// New registers the job to run every day at hour:minute in loc. Call Start to begin
func New(loc *time.Location, hour, minute uint, job *DailyJob) (*Scheduler, error) {
	if job == nil {
		return nil, errors.New("daily job is nil")
	}
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, errors.New("creating scheduler error: " + err.Error())
	}
	j, err := s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
			defer cancel()
			if err := job.Run(ctx); err != nil {
				slog.Error("daily job failed", slog.String("error", err.Error()))
			}
		}),
		gocron.WithName("daily-catalog-reconcile"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		s.Shutdown()
		return nil, errors.New("scheduling daily job error: " + err.Error())
	}
	return &Scheduler{s: s, job: j}, nil
}

func (sc *Scheduler) Start() {
	sc.s.Start()
	cleanup.Register(&cleanup.Job{
		Name: "stopping scheduler",
		F:    sc.s.Shutdown,
	})
	if next, err := sc.job.NextRun(); err == nil {
		slog.Info("scheduler started", slog.Time("next_run", next))
	}
}

func (sc *Scheduler) NextRun() (time.Time, error) {
	return sc.job.NextRun()
}

func (sc *Scheduler) Shutdown() error {
	return sc.s.Shutdown()
}
