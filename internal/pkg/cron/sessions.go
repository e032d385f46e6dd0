package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
)

// SessionJobs reports active sessions that were never checked out.
type SessionJobs struct {
	repo    workhours.WorkingHoursRepository
	maxOpen time.Duration
	now     func() time.Time
}

func NewSessionJobs(repo workhours.WorkingHoursRepository, maxOpen time.Duration) *SessionJobs {
	return &SessionJobs{repo: repo, maxOpen: maxOpen, now: time.Now}
}

func (j *SessionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("warn_stale_sessions", time.Hour, j.WarnStaleSessions)
}

// WarnStaleSessions logs every session open longer than maxOpen. Sessions are
// left untouched; closing them is an admin decision.
func (j *SessionJobs) WarnStaleSessions(ctx context.Context) error {
	cutoff := j.now().Add(-j.maxOpen)

	stale, err := j.repo.ListOpenBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list stale sessions: %w", err)
	}

	for _, s := range stale {
		name := ""
		if s.EmployeeName != nil {
			name = *s.EmployeeName
		}
		slog.Warn("session still open",
			"working_hours_id", s.ID,
			"employee_id", s.EmployeeID,
			"employee_name", name,
			"check_in", s.CheckIn.UTC().Format(time.RFC3339),
			"open_for", j.now().Sub(s.CheckIn).Round(time.Minute).String(),
		)
	}
	if len(stale) > 0 {
		slog.Info("stale session check finished", "count", len(stale))
	}
	return nil
}
