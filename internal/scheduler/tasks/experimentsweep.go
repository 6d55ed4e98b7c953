// Package tasks defines the background jobs registered with the scheduler.
package tasks

import (
	"context"

	"github.com/lumiere/lumiere/internal/scheduler"
)

// ExperimentSweeper deactivates experiments whose end date has passed.
type ExperimentSweeper interface {
	DeactivateExpired() (int, error)
}

// NewExperimentSweep builds the hourly sweep that deactivates expired
// experiments. Expired tests are also caught lazily on read; the sweep
// keeps stored state tidy between reads.
func NewExperimentSweep(sweeper ExperimentSweeper) scheduler.TaskConfig {
	return scheduler.TaskConfig{
		ID:          "experiment-sweep",
		Name:        "Experiment Sweep",
		Description: "Deactivate experiments past their end date",
		Cron:        "0 * * * *",
		RunOnStart:  true,
		Func: func(ctx context.Context) error {
			_, err := sweeper.DeactivateExpired()
			return err
		},
	}
}
