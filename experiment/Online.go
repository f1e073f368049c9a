package experiment

import (
	"context"
	"fmt"

	"github.com/samuelfneumann/pointmass/agent"
	env "github.com/samuelfneumann/pointmass/environment"
	"github.com/samuelfneumann/pointmass/experiment/tracker"
	ts "github.com/samuelfneumann/pointmass/timestep"
)

// Online is an Experiment that runs a policy online only. No offline
// evaluation is performed.
type Online struct {
	env.Environment
	agent.Policy
	maxSteps     uint
	currentSteps uint
	trackers     []tracker.Tracker
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given policy. The steps parameter determines how
// many timesteps the experiment is run for, and the t parameter
// is a slice of tracker.Tracker which determine what data is saved.
func NewOnline(e env.Environment, p agent.Policy, steps uint,
	t ...tracker.Tracker) *Online {
	return &Online{e, p, steps, 0, t}
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment. The episode
// ends early if the step limit of the experiment is reached or ctx is
// cancelled.
func (o *Online) RunEpisode(ctx context.Context) (bool, error) {
	step, err := o.Environment.Reset()
	if err != nil {
		return true, fmt.Errorf("runEpisode: could not reset: %w", err)
	}
	o.track(step)

	// Run the next timestep
	for !step.Last() && o.currentSteps < o.maxSteps {
		if err := ctx.Err(); err != nil {
			return true, err
		}
		o.currentSteps++

		// Select action, step in environment
		action := o.Policy.SelectAction(step)
		step, _, err = o.Environment.Step(action)
		if err != nil {
			return true, fmt.Errorf("runEpisode: could not step: %w", err)
		}

		// Cache the environment step in each Tracker
		o.track(step)
	}

	// Return whether or not the max timestep limit has been reached
	return o.currentSteps >= o.maxSteps, nil
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run(ctx context.Context) error {
	for ended := false; !ended; {
		var err error
		if ended, err = o.RunEpisode(ctx); err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}
	return nil
}

// Steps returns the number of timesteps run so far
func (o *Online) Steps() uint {
	return o.currentSteps
}

// Save saves the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
