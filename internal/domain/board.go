package domain

// Board geometry
const (
	BoardSize   = 100 // squares, numbered 1..100
	GridWidth   = 10
	StartSquare = 1
	FinalSquare = 100
)

// TransitionKind identifies the kind of board transition a square triggers.
type TransitionKind string

const (
	TransitionSnake  TransitionKind = "SNAKE"
	TransitionLadder TransitionKind = "LADDER"
)

// snakes maps a snake head to its tail (always a lower square).
// Keys are in [2,99]; squares 1 and 100 are never transition sources.
var snakes = map[int]int{
	27: 5,
	40: 3,
	43: 18,
	54: 31,
	66: 45,
	76: 58,
	89: 53,
	99: 41,
}

// ladders maps a ladder foot to its top (always a higher square).
var ladders = map[int]int{
	4:  25,
	7:  14,
	21: 39,
	29: 74,
	37: 58,
	51: 67,
	71: 91,
	80: 99,
}

// Transition returns the destination square if landing on the given square
// triggers a snake or ladder. The snake table is checked first; the two
// tables share no keys, so the order is not observable.
func Transition(square int) (int, TransitionKind, bool) {
	if dest, ok := snakes[square]; ok {
		return dest, TransitionSnake, true
	}
	if dest, ok := ladders[square]; ok {
		return dest, TransitionLadder, true
	}
	return 0, "", false
}

// Snakes returns a copy of the snake table for rendering.
func Snakes() map[int]int {
	return copyTable(snakes)
}

// Ladders returns a copy of the ladder table for rendering.
func Ladders() map[int]int {
	return copyTable(ladders)
}

func copyTable(table map[int]int) map[int]int {
	out := make(map[int]int, len(table))
	for from, to := range table {
		out[from] = to
	}
	return out
}

// Coordinates projects a square number onto the 10x10 grid using serpentine
// ordering: row 0 is the bottom row, even rows run left to right and odd
// rows right to left. Square 1 sits at (0,0) and square 100 at (0,9).
func Coordinates(square int) (col, row int) {
	idx := square - 1
	row = idx / GridWidth
	col = idx % GridWidth
	if row%2 == 1 {
		col = GridWidth - 1 - col
	}
	return col, row
}
