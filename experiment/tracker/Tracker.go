// Package tracker implements Trackers, which track and save data in an
// experiment
package tracker

import (
	"encoding/gob"
	"fmt"
	"os"

	ts "github.com/samuelfneumann/pointmass/timestep"
)

// Tracker keeps track of experiment data and saves the data
// after the experiment has finished
type Tracker interface {
	Track(t ts.TimeStep)
	Save() error
}

// save gob encodes data into the file filename
func save(filename string, data interface{}) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not open save file: %w", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err = en.Encode(data); err != nil {
		return fmt.Errorf("could not encode data: %w", err)
	}
	return file.Close()
}

// LoadData loads and returns the data saved by a Return or
// EpisodeLength Tracker
func LoadData(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadData: could not open data file: %w", err)
	}
	defer file.Close()

	// Create the decoder and the variable to store the data in
	dec := gob.NewDecoder(file)
	var data []float64

	if err = dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("loadData: could not decode data: %w", err)
	}
	return data, nil
}

// LoadEndCounts loads and returns the data saved by an EndCount
// Tracker
func LoadEndCounts(filename string) (map[string]int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadEndCounts: could not open data file: %w",
			err)
	}
	defer file.Close()

	dec := gob.NewDecoder(file)
	var data map[string]int

	if err = dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("loadEndCounts: could not decode data: %w", err)
	}
	return data, nil
}
