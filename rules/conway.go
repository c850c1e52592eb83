package rules

// Thresholds of the classic B3/S23 rule.
const (
	// SurvivalMin is the fewest live neighbors an alive cell survives with.
	SurvivalMin = 2
	// SurvivalMax is the most live neighbors an alive cell survives with.
	SurvivalMax = 3
	// BirthCount is the exact live-neighbor count that revives a dead cell.
	BirthCount = 3
)

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

An alive cell keeps living with 2 or 3 live neighbors and otherwise dies of
underpopulation or overpopulation; a dead cell comes alive with exactly 3 live
neighbors. Equivalent to the compact form (alive && neighbors == 2) || neighbors == 3.
*/
func NextState(neighbors int, alive bool) bool {
	switch {
	case alive && neighbors < SurvivalMin:
		return false // underpopulation
	case alive && neighbors <= SurvivalMax:
		return true // survival
	case alive:
		return false // overpopulation
	default:
		return neighbors == BirthCount // reproduction
	}
}
