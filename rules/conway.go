package rules

/*
Conway returns the classical Game of Life rule set, B3/S23.

A live cell survives with 2 or 3 neighbors and a dead cell is born with exactly 3,
which is the same as (alive && neighbors == 2) || neighbors == 3.
*/
func Conway() Configuration {
	return Configuration{
		Birth:   NewSet(3),
		Survive: NewSet(2, 3),
	}
}
