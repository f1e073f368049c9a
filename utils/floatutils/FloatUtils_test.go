package floatutils

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r1"
)

func TestClip(t *testing.T) {
	cases := []struct {
		value, want float64
	}{
		{5, 1},
		{-5, -1},
		{0.3, 0.3},
		{1, 1},
		{-1, -1},
		{math.NaN(), 1},
	}

	for _, c := range cases {
		if have := Clip(c.value, -1, 1); have != c.want {
			t.Errorf("clip(%v): \n\twant(%v) \n\thave(%v)", c.value, c.want,
				have)
		}
		have := ClipInterval(c.value, r1.Interval{Min: -1, Max: 1})
		if have != c.want {
			t.Errorf("clipInterval(%v): \n\twant(%v) \n\thave(%v)", c.value,
				c.want, have)
		}
	}
}

func TestClipSlice(t *testing.T) {
	values := []float64{5, -5, 0.5}
	ClipSlice(values, -1, 1)

	want := []float64{1, -1, 0.5}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("clipSlice: \n\twant(%v) \n\thave(%v)", want, values)
			break
		}
	}
}

func TestMaxSlice(t *testing.T) {
	max, indices := MaxSlice([]float64{0, 3, 1, 3})
	if max != 3 {
		t.Errorf("maxSlice: \n\twant(3) \n\thave(%v)", max)
	}
	if len(indices) != 2 || indices[0] != 1 || indices[1] != 3 {
		t.Errorf("maxSlice: \n\twant([1 3]) \n\thave(%v)", indices)
	}

	_, indices = MaxSlice([]float64{0, 0, 0, 0})
	if indices[0] != 0 {
		t.Errorf("maxSlice: ties should start at the first index, have %v",
			indices)
	}
}

func TestHasNaN(t *testing.T) {
	if HasNaN([]float64{1, 2}) {
		t.Error("hasNaN: no NaN expected")
	}
	if !HasNaN([]float64{1, math.NaN()}) {
		t.Error("hasNaN: NaN expected")
	}
}
