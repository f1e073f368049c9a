// Package envconfig provides configuration structs for configuring the
// point mass environment with default task parameters. Environment
// configurations in this package are JSON and YAML serializable.
package envconfig

import (
	"errors"
	"fmt"

	"github.com/samuelfneumann/pointmass/environment/pointmass"
	ts "github.com/samuelfneumann/pointmass/timestep"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a Config cannot describe a legal
// environment
var ErrInvalidConfig = errors.New("invalid environment configuration")

// DefaultDiscount is the discount of the default configuration
const DefaultDiscount float64 = 1.0

// Config implements a specific configuration of the point mass
// environment and its Reach task
type Config struct {
	TaskID           pointmass.TaskID `json:"task_id" yaml:"task_id"`
	GoalRange        float64          `json:"goal_range" yaml:"goal_range"`
	RewardRange      float64          `json:"reward_range" yaml:"reward_range"`
	TerminalTimestep int              `json:"terminal_timestep" yaml:"terminal_timestep"`
	InitRandom       bool             `json:"init_random" yaml:"init_random"`
	Discount         float64          `json:"discount" yaml:"discount"`
	Seed             uint64           `json:"seed" yaml:"seed"`
}

// DefaultConfig returns the default configuration for task id
func DefaultConfig(id pointmass.TaskID) Config {
	return Config{
		TaskID:           id,
		GoalRange:        pointmass.DefaultGoalRange,
		RewardRange:      pointmass.DefaultRewardRange,
		TerminalTimestep: pointmass.DefaultTerminalTimestep,
		InitRandom:       false,
		Discount:         DefaultDiscount,
	}
}

// Validate returns an error if the Config does not describe a legal
// environment
func (c Config) Validate() error {
	if _, err := c.TaskID.Int(); err != nil {
		return fmt.Errorf("validate: %w: %v", ErrInvalidConfig, err)
	}
	if c.GoalRange < 0 {
		return fmt.Errorf("validate: %w: goal range %v < 0",
			ErrInvalidConfig, c.GoalRange)
	}
	if c.RewardRange < 0 {
		return fmt.Errorf("validate: %w: reward range %v < 0",
			ErrInvalidConfig, c.RewardRange)
	}
	if c.TerminalTimestep < 1 {
		return fmt.Errorf("validate: %w: terminal timestep %v < 1",
			ErrInvalidConfig, c.TerminalTimestep)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: %w: discount %v outside [0, 1]",
			ErrInvalidConfig, c.Discount)
	}
	return nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment.
func (c Config) Create() (*pointmass.PointMass, ts.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	task, err := pointmass.NewReach(c.TaskID, c.GoalRange, c.RewardRange,
		c.TerminalTimestep, c.InitRandom, c.Seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	env, step, err := pointmass.New(task, c.Discount)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}
	return env, step, nil
}

// YAML returns the Config encoded as YAML
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return data, nil
}

// String returns a one line description of the Config
func (c Config) String() string {
	return fmt.Sprintf("task: %v  |  goal range: %v  |  reward range: %v  |  "+
		"terminal timestep: %v  |  init random: %v  |  discount: %v  |  "+
		"seed: %v", c.TaskID, c.GoalRange, c.RewardRange, c.TerminalTimestep,
		c.InitRandom, c.Discount, c.Seed)
}
