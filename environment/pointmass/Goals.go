package pointmass

import "gonum.org/v1/gonum/spatial/r2"

const (
	// GoalDistance is the distance of every goal from the origin
	GoalDistance float64 = 3.5

	// NumTasks is the number of task indices with a dedicated goal.
	// Task indices wrap onto the four goals, so tasks k and k+4 share
	// a goal.
	NumTasks int = 8
)

// goals lists the goal of tasks 0 through 3: east, north, west, south
var goals = [...]r2.Vec{
	{X: GoalDistance, Y: 0},
	{X: 0, Y: GoalDistance},
	{X: -GoalDistance, Y: 0},
	{X: 0, Y: -GoalDistance},
}

// GoalFor returns the goal position of task taskInt. Tasks outside
// [0, NumTasks) default to the goal of task 0.
func GoalFor(taskInt int) r2.Vec {
	if taskInt < 0 || taskInt >= NumTasks {
		return goals[0]
	}
	return goals[taskInt%len(goals)]
}
