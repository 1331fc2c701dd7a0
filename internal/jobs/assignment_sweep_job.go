package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"agrikart/internal/core/application/usecases/commands"
)

// assignmentSweepSchedule runs the sweep every 30 seconds; assignment misses
// resolve on the next tick, so a tighter schedule buys nothing.
const assignmentSweepSchedule = "*/30 * * * * *"

// AssignmentSweepJob periodically re-runs courier dispatch over pending
// orders without an assignment.
type AssignmentSweepJob struct {
	handler commands.AssignPendingOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAssignmentSweepJob creates the sweep job around the assignment handler.
func NewAssignmentSweepJob(
	handler commands.AssignPendingOrdersCommandHandler,
	logger *slog.Logger,
) *AssignmentSweepJob {
	return &AssignmentSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "assignment_sweep_job"),
	}
}

// Start begins the sweep on its schedule.
func (j *AssignmentSweepJob) Start() error {
	_, err := j.cron.AddFunc(assignmentSweepSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewAssignPendingOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Assignment sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment sweep started",
		"schedule", assignmentSweepSchedule)
	return nil
}

// Stop stops the sweep job.
func (j *AssignmentSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment sweep stopped")
}
