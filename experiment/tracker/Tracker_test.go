package tracker

import (
	"bytes"
	"log"
	"path/filepath"
	"strings"
	"testing"

	ts "github.com/samuelfneumann/pointmass/timestep"
)

// episode returns the timesteps of an episode with the argument
// rewards, the last of which ends with endType
func episode(rewards []float64, endType ts.EndType) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, 1, nil, 0)}
	for i, r := range rewards {
		step := ts.New(ts.Mid, r, 1, nil, i+1)
		if i == len(rewards)-1 {
			step.StepType = ts.Last
			step.SetEnd(endType)
		}
		steps = append(steps, step)
	}
	return steps
}

func TestReturn(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "return.bin")
	r := NewReturn(filename)

	for _, step := range episode([]float64{0, 0.5, 1000}, ts.TerminalStateReached) {
		r.Track(step)
	}
	for _, step := range episode([]float64{0, -1000}, ts.OutOfBounds) {
		r.Track(step)
	}

	want := []float64{1000.5, -1000}
	have := r.Returns()
	if len(have) != len(want) || have[0] != want[0] || have[1] != want[1] {
		t.Fatalf("returns: \n\twant(%v) \n\thave(%v)", want, have)
	}

	if err := r.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := LoadData(filename)
	if err != nil {
		t.Fatalf("loadData: %v", err)
	}
	if len(data) != 2 || data[0] != want[0] || data[1] != want[1] {
		t.Errorf("loadData: \n\twant(%v) \n\thave(%v)", want, data)
	}
}

func TestReturnDiscardsCutEpisodes(t *testing.T) {
	r := NewReturn("")

	// An episode cut off before its last step
	r.Track(ts.New(ts.First, 0, 1, nil, 0))
	r.Track(ts.New(ts.Mid, 5, 1, nil, 1))

	for _, step := range episode([]float64{1, 2}, ts.Timeout) {
		r.Track(step)
	}

	if have := r.Returns(); len(have) != 1 || have[0] != 3 {
		t.Errorf("returns: \n\twant([3]) \n\thave(%v)", have)
	}
}

func TestReturnPanicsOnGap(t *testing.T) {
	r := NewReturn("")
	r.Track(ts.New(ts.First, 0, 1, nil, 0))

	defer func() {
		if recover() == nil {
			t.Error("track: expected panic on non-sequential timesteps")
		}
	}()
	r.Track(ts.New(ts.Mid, 0, 1, nil, 2))
}

func TestEpisodeLength(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "length.bin")
	e := NewEpisodeLength(filename)

	for _, step := range episode([]float64{0, 0, 0, 1000}, ts.TerminalStateReached) {
		e.Track(step)
	}
	for _, step := range episode([]float64{-1000}, ts.Timeout) {
		e.Track(step)
	}

	if err := e.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := LoadData(filename)
	if err != nil {
		t.Fatalf("loadData: %v", err)
	}
	if len(data) != 2 || data[0] != 4 || data[1] != 1 {
		t.Errorf("loadData: \n\twant([4 1]) \n\thave(%v)", data)
	}
}

func TestEndCount(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "ends.bin")
	e := NewEndCount(filename)

	ends := []ts.EndType{ts.Timeout, ts.OutOfBounds, ts.Timeout,
		ts.TerminalStateReached}
	for _, end := range ends {
		for _, step := range episode([]float64{0, 0}, end) {
			e.Track(step)
		}
	}

	if e.Count(ts.Timeout) != 2 || e.Count(ts.OutOfBounds) != 1 {
		t.Errorf("count: unexpected counts %v", e.counts)
	}

	if err := e.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	counts, err := LoadEndCounts(filename)
	if err != nil {
		t.Fatalf("loadEndCounts: %v", err)
	}
	if counts["Timeout"] != 2 || counts["TerminalStateReached"] != 1 {
		t.Errorf("loadEndCounts: unexpected counts %v", counts)
	}
}

func TestLoadDataMissing(t *testing.T) {
	if _, err := LoadData(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Error("loadData: expected error for missing file")
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(log.New(&buf, "", 0))

	for _, step := range episode([]float64{0.5, -1000}, ts.OutOfBounds) {
		l.Track(step)
	}

	out := buf.String()
	if strings.Count(out, "TimeStep") != 3 {
		t.Errorf("track: expected 3 logged timesteps, have \n%v", out)
	}
	if !strings.Contains(out, "return: -999.50") {
		t.Errorf("track: expected episode return in log, have \n%v", out)
	}
	if !strings.Contains(out, "end: OutOfBounds") {
		t.Errorf("track: expected end type in log, have \n%v", out)
	}
}
