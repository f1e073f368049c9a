package pointmass

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samuelfneumann/pointmass/utils/floatutils"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyTaskID is returned when a score vector task id has no
	// scores to select a task from
	ErrEmptyTaskID = errors.New("task id has no scores")

	// ErrInvalidTaskID is returned when a task id cannot be resolved to
	// a task index
	ErrInvalidTaskID = errors.New("invalid task id")
)

// TaskID selects one of the discrete tasks of the environment. A TaskID
// is either a bare task index or a vector of scores, one per task, in
// which case the selected task is the one with the highest score. Ties
// are broken in favour of the lowest index.
//
// The zero value of TaskID selects task 0.
type TaskID struct {
	index    int
	scores   []float64
	isScores bool
}

// Index returns a TaskID selecting task k directly
func Index(k int) TaskID {
	return TaskID{index: k}
}

// Scores returns a TaskID selecting the task with the highest score.
// A one-hot vector selects the task at its hot index.
func Scores(scores ...float64) TaskID {
	s := make([]float64, len(scores))
	copy(s, scores)
	return TaskID{scores: s, isScores: true}
}

// IsScores returns whether the TaskID holds a score vector
func (t TaskID) IsScores() bool {
	return t.isScores
}

// Int resolves the TaskID to a task index
func (t TaskID) Int() (int, error) {
	if !t.isScores {
		return t.index, nil
	}

	if len(t.scores) == 0 {
		return 0, ErrEmptyTaskID
	}
	if floatutils.HasNaN(t.scores) {
		return 0, fmt.Errorf("%w: NaN score in %v", ErrInvalidTaskID,
			t.scores)
	}

	_, indices := floatutils.MaxSlice(t.scores)
	return indices[0], nil
}

// String returns the string representation of the TaskID
func (t TaskID) String() string {
	if t.isScores {
		return fmt.Sprintf("%v", t.scores)
	}
	return fmt.Sprintf("%v", t.index)
}

// MarshalJSON encodes the TaskID as either a number or an array of
// numbers
func (t TaskID) MarshalJSON() ([]byte, error) {
	if t.isScores {
		return json.Marshal(t.scores)
	}
	return json.Marshal(t.index)
}

// UnmarshalJSON decodes a TaskID from either a number or an array of
// numbers
func (t *TaskID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var scores []float64
		if err := json.Unmarshal(data, &scores); err != nil {
			return fmt.Errorf("unmarshalJSON: %w: %v", ErrInvalidTaskID, err)
		}
		*t = Scores(scores...)
		return nil
	}

	var index int
	if err := json.Unmarshal(data, &index); err != nil {
		return fmt.Errorf("unmarshalJSON: %w: %v", ErrInvalidTaskID, err)
	}
	*t = Index(index)
	return nil
}

// MarshalYAML encodes the TaskID as either a number or a sequence of
// numbers
func (t TaskID) MarshalYAML() (interface{}, error) {
	if t.isScores {
		return t.scores, nil
	}
	return t.index, nil
}

// UnmarshalYAML decodes a TaskID from either a number or a sequence of
// numbers
func (t *TaskID) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var scores []float64
		if err := node.Decode(&scores); err != nil {
			return fmt.Errorf("unmarshalYAML: %w: %v", ErrInvalidTaskID, err)
		}
		*t = Scores(scores...)

	case yaml.ScalarNode:
		var index int
		if err := node.Decode(&index); err != nil {
			return fmt.Errorf("unmarshalYAML: %w: %v", ErrInvalidTaskID, err)
		}
		*t = Index(index)

	default:
		return fmt.Errorf("unmarshalYAML: %w: line %v", ErrInvalidTaskID,
			node.Line)
	}
	return nil
}
