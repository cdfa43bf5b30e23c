package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mariepimienta/task-app/internal/core/ports"
)

// Scheduler wraps cron-based background jobs.
type Scheduler struct {
	cron *cron.Cron
}

func New(loc *time.Location) *Scheduler {
	return &Scheduler{cron: cron.New(cron.WithLocation(loc))}
}

// ScheduleWeeklyRollover registers the Monday-morning job that
// materialises the new current week from the template. When propagate
// is true the job also reconciles existing weeks against the template,
// which discards manual edits to the current week.
func (s *Scheduler) ScheduleWeeklyRollover(planner ports.PlannerService, propagate bool) (cron.EntryID, error) {
	// Minute 5 to avoid racing a client opened exactly at midnight.
	return s.cron.AddFunc("5 0 * * MON", func() {
		ctx := context.Background()
		if propagate {
			if err := planner.PropagateTemplate(ctx); err != nil {
				zap.L().Error("weekly template propagation failed", zap.Error(err))
				return
			}
		}
		week, err := planner.EnsureCurrentWeek(ctx)
		if err != nil {
			zap.L().Error("weekly rollover failed", zap.Error(err))
			return
		}
		zap.L().Info("weekly rollover complete", zap.String("week", week))
	})
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
