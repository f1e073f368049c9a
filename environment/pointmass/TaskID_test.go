package pointmass

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestTaskIDInt(t *testing.T) {
	cases := []struct {
		id   TaskID
		want int
	}{
		{Index(0), 0},
		{Index(6), 6},
		{Index(12), 12},
		{Scores(0, 1, 0, 0), 1},
		{Scores(0, 0, 0, 0, 0, 0, 0, 1), 7},
		{Scores(0, 0), 0},
		{Scores(0.2, 0.9, 0.9), 1},
		{Scores(-3), 0},
		{TaskID{}, 0},
	}

	for _, c := range cases {
		have, err := c.id.Int()
		if err != nil {
			t.Errorf("int(%v): %v", c.id, err)
			continue
		}
		if have != c.want {
			t.Errorf("int(%v): \n\twant(%v) \n\thave(%v)", c.id, c.want, have)
		}
	}
}

func TestTaskIDIntErrors(t *testing.T) {
	if _, err := Scores().Int(); !errors.Is(err, ErrEmptyTaskID) {
		t.Errorf("int: \n\twant(%v) \n\thave(%v)", ErrEmptyTaskID, err)
	}
	if _, err := Scores(0, math.NaN()).Int(); !errors.Is(err,
		ErrInvalidTaskID) {
		t.Errorf("int: \n\twant(%v) \n\thave(%v)", ErrInvalidTaskID, err)
	}
}

func TestScoresCopies(t *testing.T) {
	scores := []float64{0, 1}
	id := Scores(scores...)
	scores[0] = 5

	if k, _ := id.Int(); k != 1 {
		t.Errorf("scores: task id should not alias its argument, have %v", k)
	}
}

func TestTaskIDJSON(t *testing.T) {
	var cfg struct {
		Task TaskID `json:"task"`
	}

	if err := json.Unmarshal([]byte(`{"task": 3}`), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Task.IsScores() {
		t.Error("unmarshalJSON: number should decode to an index")
	}
	if k, _ := cfg.Task.Int(); k != 3 {
		t.Errorf("unmarshalJSON: \n\twant(3) \n\thave(%v)", k)
	}

	if err := json.Unmarshal([]byte(`{"task": [0, 0, 1]}`), &cfg); err != nil {
		t.Fatal(err)
	}
	if !cfg.Task.IsScores() {
		t.Error("unmarshalJSON: array should decode to scores")
	}
	if k, _ := cfg.Task.Int(); k != 2 {
		t.Errorf("unmarshalJSON: \n\twant(2) \n\thave(%v)", k)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"task":[0,0,1]}` {
		t.Errorf("marshalJSON: \n\twant(%v) \n\thave(%v)", `{"task":[0,0,1]}`,
			string(data))
	}

	err = json.Unmarshal([]byte(`{"task": "east"}`), &cfg)
	if !errors.Is(err, ErrInvalidTaskID) {
		t.Errorf("unmarshalJSON: \n\twant(%v) \n\thave(%v)", ErrInvalidTaskID,
			err)
	}
}

func TestTaskIDYAML(t *testing.T) {
	var cfg struct {
		Task TaskID `yaml:"task"`
	}

	if err := yaml.Unmarshal([]byte("task: 5\n"), &cfg); err != nil {
		t.Fatal(err)
	}
	if k, _ := cfg.Task.Int(); k != 5 || cfg.Task.IsScores() {
		t.Errorf("unmarshalYAML: \n\twant(index 5) \n\thave(%v)", cfg.Task)
	}

	if err := yaml.Unmarshal([]byte("task: [0, 1]\n"), &cfg); err != nil {
		t.Fatal(err)
	}
	if k, _ := cfg.Task.Int(); k != 1 || !cfg.Task.IsScores() {
		t.Errorf("unmarshalYAML: \n\twant(scores [0 1]) \n\thave(%v)", cfg.Task)
	}

	err := yaml.Unmarshal([]byte("task: {a: 1}\n"), &cfg)
	if !errors.Is(err, ErrInvalidTaskID) {
		t.Errorf("unmarshalYAML: \n\twant(%v) \n\thave(%v)", ErrInvalidTaskID,
			err)
	}
}
