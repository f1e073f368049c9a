package tracker

import (
	"fmt"

	"github.com/samuelfneumann/pointmass/timestep"
)

// EndCount counts how often episodes end with each timestep.EndType
type EndCount struct {
	counts   map[timestep.EndType]int
	filename string
}

// NewEndCount returns a new EndCount Tracker which will save its data
// at the specified location filename
func NewEndCount(filename string) *EndCount {
	return &EndCount{
		counts:   make(map[timestep.EndType]int),
		filename: filename,
	}
}

// Track counts the EndType of t if t is the last timestep of an episode
func (e *EndCount) Track(t timestep.TimeStep) {
	if t.Last() {
		e.counts[t.EndType()]++
	}
}

// Count returns the number of episodes which ended with EndType end
func (e *EndCount) Count(end timestep.EndType) int {
	return e.counts[end]
}

// Save saves the counts to disk, keyed by the name of each EndType
func (e *EndCount) Save() error {
	named := make(map[string]int, len(e.counts))
	for end, count := range e.counts {
		named[end.String()] = count
	}

	if err := save(e.filename, named); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
