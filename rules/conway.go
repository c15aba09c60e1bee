package rules

/*
NextState returns whether a cell is alive in the next generation.

	neighbors | next state
	0 or 1    | dead
	2         | unchanged
	3         | alive
	4 or more | dead
*/
func NextState(neighbors int, alive bool) bool {
	switch {
	case neighbors == 2:
		return alive
	case neighbors == 3:
		return true
	default:
		return false
	}
}
