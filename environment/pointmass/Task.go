package pointmass

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/pointmass/environment"
	ts "github.com/samuelfneumann/pointmass/timestep"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// GoalReward is given on the last step of an episode that ends
	// within goal range of the goal
	GoalReward float64 = 1000.0

	// FailReward is given on the last step of every other episode
	FailReward float64 = -1000.0

	// ObservationHighScale scales the largest goal coordinate into the
	// observation bound
	ObservationHighScale float64 = 3.0

	DefaultGoalRange        float64 = 0.5
	DefaultRewardRange      float64 = 1.0
	DefaultTerminalTimestep int     = 28
)

// Episode end labels, as reported by Info.Terminal
const (
	TimeUp     string = "time_up"
	OutOfRange string = "out_of_range"
)

// Reach implements the goal reaching task of the PointMass
// environment. The task selects one of the fixed goals from a TaskID,
// samples starting positions, shapes rewards by the distance to the
// goal, and ends episodes.
//
// While an episode runs, the reward is the shaped proximity reward
// max(0, rewardRange - d), where d is the Euclidean distance between
// the point mass and the goal. Episodes end, in priority order, when
// the step limit is reached, when the point mass leaves the
// observation bounds, or when the point mass comes within goalRange of
// the goal. The reward of the final step is GoalReward if the point
// mass is within goalRange of the goal, no matter which condition ended
// the episode, and FailReward otherwise.
//
// The observation bound is three times the largest absolute goal
// coordinate of the task the Reach was constructed with. It is never
// recomputed when SetTask selects a new goal.
type Reach struct {
	goalRange   float64
	rewardRange float64
	initRandom  bool

	taskID  TaskID
	taskInt int
	goal    r2.Vec

	observationHigh float64

	stepLimit *environment.StepLimit
	ender     environment.Enders

	origin  *environment.FixedStarter
	corners *environment.CategoricalStarter
}

// NewReach returns a new Reach task for task id. Episodes are cut
// after terminalTimestep steps. If initRandom is true, episodes start
// at the origin or at twice the goal coordinate on each axis,
// independently and with equal probability, using a random source
// seeded with seed. Otherwise, episodes start at the origin.
func NewReach(id TaskID, goalRange, rewardRange float64,
	terminalTimestep int, initRandom bool, seed uint64) (*Reach, error) {
	if terminalTimestep < 1 {
		return nil, fmt.Errorf("newReach: terminal timestep must be "+
			"positive \n\twant(>0) \n\thave(%v)", terminalTimestep)
	}
	if goalRange < 0 || math.IsNaN(goalRange) {
		return nil, fmt.Errorf("newReach: illegal goal range %v", goalRange)
	}
	if rewardRange < 0 || math.IsNaN(rewardRange) {
		return nil, fmt.Errorf("newReach: illegal reward range %v",
			rewardRange)
	}

	r := &Reach{
		goalRange:   goalRange,
		rewardRange: rewardRange,
		initRandom:  initRandom,
		stepLimit:   environment.NewStepLimit(terminalTimestep),
		origin:      environment.NewFixedStarter([]float64{0, 0}),
	}
	if initRandom {
		r.corners = environment.NewCategoricalStarter([]int{2, 2}, seed)
	}

	if err := r.SetTask(id); err != nil {
		return nil, fmt.Errorf("newReach: %w", err)
	}

	// The observation bound is fixed by the first goal
	r.observationHigh = math.Max(math.Abs(r.goal.X), math.Abs(r.goal.Y)) *
		ObservationHighScale
	bound := r1.Interval{Min: -r.observationHigh, Max: r.observationHigh}
	outOfRange := environment.NewIntervalLimit(
		[]r1.Interval{bound, bound},
		[]int{0, 1},
		ts.OutOfBounds,
	)

	atGoal := environment.NewFunctionEnder(func(state *mat.VecDense) bool {
		return r.Distance(state) <= r.goalRange
	}, ts.TerminalStateReached)

	r.ender = environment.Enders{r.stepLimit, outOfRange, atGoal}

	return r, nil
}

// SetTask selects the task and goal given by id. If id cannot be
// resolved, the current task is kept and an error is returned.
func (r *Reach) SetTask(id TaskID) error {
	taskInt, err := id.Int()
	if err != nil {
		return fmt.Errorf("setTask: %w", err)
	}

	r.taskID = id
	r.taskInt = taskInt
	r.goal = GoalFor(taskInt)
	return nil
}

// TaskID returns the task id the current goal was selected with
func (r *Reach) TaskID() TaskID {
	return r.taskID
}

// TaskInt returns the task index the current goal was selected with
func (r *Reach) TaskInt() int {
	return r.taskInt
}

// Goal returns the current goal position
func (r *Reach) Goal() r2.Vec {
	return r.goal
}

// ObservationHigh returns the bound of each observation dimension,
// which is also the bound past which episodes end as out of range
func (r *Reach) ObservationHigh() float64 {
	return r.observationHigh
}

// GoalRange returns the distance to the goal within which the goal is
// considered reached
func (r *Reach) GoalRange() float64 {
	return r.goalRange
}

// RewardRange returns the distance to the goal within which the shaped
// reward is positive
func (r *Reach) RewardRange() float64 {
	return r.rewardRange
}

// TerminalTimestep returns the episode step limit
func (r *Reach) TerminalTimestep() int {
	return r.stepLimit.EpisodeSteps()
}

// InitRandom returns whether starting positions are randomised
func (r *Reach) InitRandom() bool {
	return r.initRandom
}

// Distance returns the Euclidean distance between an (x, y) state and
// the goal
func (r *Reach) Distance(state mat.Vector) float64 {
	if state.Len() != ObservationDims {
		panic(fmt.Sprintf("distance: state should be (x, y) coordinates "+
			"\n\twant(%v) \n\thave(%v)", ObservationDims, state.Len()))
	}
	pos := r2.Vec{X: state.AtVec(0), Y: state.AtVec(1)}
	return r2.Norm(r2.Sub(pos, r.goal))
}

// Start returns a starting (x, y) position for a new episode
func (r *Reach) Start() *mat.VecDense {
	if !r.initRandom {
		return r.origin.Start()
	}

	start := r.corners.Start()
	start.SetVec(0, r.goal.X*start.AtVec(0)*2)
	start.SetVec(1, r.goal.Y*start.AtVec(1)*2)
	return start
}

// GetReward returns the shaped reward for moving into nextState. The
// terminal reward override is applied by End.
func (r *Reach) GetReward(_, _, nextState mat.Vector) float64 {
	return math.Max(0, r.rewardRange-r.Distance(nextState))
}

// End determines if a timestep is the last timestep in the episode.
// The timestep's observation must hold the unclamped (x, y) position.
// If the episode ends, End changes the TimeStep's StepType to
// timestep.Last, sets its EndType to the first condition which ended
// the episode, and replaces its reward with the terminal reward.
func (r *Reach) End(t *ts.TimeStep) bool {
	if !r.ender.End(t) {
		return false
	}

	if r.Distance(t.Observation) <= r.goalRange {
		t.Reward = GoalReward
	} else {
		t.Reward = FailReward
	}
	return true
}

// AtGoal returns whether the argument (x, y) state is within goal
// range of the goal
func (r *Reach) AtGoal(state mat.Matrix) bool {
	rows, cols := state.Dims()
	if rows != ObservationDims || cols != 1 {
		return false
	}

	pos := mat.NewVecDense(ObservationDims, []float64{
		state.At(0, 0),
		state.At(1, 0),
	})
	return r.Distance(pos) <= r.goalRange
}

// Min returns the minimum attainable reward
func (r *Reach) Min() float64 {
	return FailReward
}

// Max returns the maximum attainable reward
func (r *Reach) Max() float64 {
	return GoalReward
}

// RewardSpec returns the reward specification of the Task
func (r *Reach) RewardSpec() environment.Spec {
	return environment.NewBoxSpec(1, environment.Reward, r.Min(), r.Max())
}

// Label returns the episode end label for an EndType: TimeUp for step
// limits, OutOfRange for leaving the observation bounds, and the empty
// string otherwise.
func Label(e ts.EndType) string {
	switch e {
	case ts.Timeout:
		return TimeUp
	case ts.OutOfBounds:
		return OutOfRange
	default:
		return ""
	}
}
