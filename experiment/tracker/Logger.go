package tracker

import (
	"log"

	"github.com/samuelfneumann/pointmass/timestep"
)

// Logger writes every tracked timestep to a log.Logger. It saves
// nothing.
type Logger struct {
	logger *log.Logger
	ret    float64
}

// NewLogger returns a new Logger Tracker writing to l
func NewLogger(l *log.Logger) *Logger {
	return &Logger{logger: l}
}

// Track logs t, and the episodic return once an episode ends
func (l *Logger) Track(t timestep.TimeStep) {
	if t.First() {
		l.ret = 0
	}
	l.ret += t.Reward

	l.logger.Println(t)
	if t.Last() {
		l.logger.Printf("episode ended after %v steps  |  return: %.2f  |  "+
			"end: %v", t.Number, l.ret, t.EndType())
	}
}

// Save implements the Tracker interface
func (l *Logger) Save() error {
	return nil
}
