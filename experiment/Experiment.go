// Package experiment implements functionality for running an experiment
package experiment

import (
	"context"

	"github.com/samuelfneumann/pointmass/experiment/tracker"
	ts "github.com/samuelfneumann/pointmass/timestep"
)

// Experiment outlines structs that can run experiments. Experiments
// send each environment TimeStep to their Trackers, which cache the
// data they need in RAM. The Save() function then saves all cached
// data to disk, usually after the experiment has been run. The Run()
// method runs episodes until the maximum timestep limit is reached or
// the context is cancelled. The RunEpisode() method runs a single
// episode.
type Experiment interface {
	Run(ctx context.Context) error

	// RunEpisode returns whether the step limit of the experiment
	// has been reached
	RunEpisode(ctx context.Context) (bool, error)

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)

	// Tracks current timestep by sending it to Trackers
	track(ts.TimeStep)
}
