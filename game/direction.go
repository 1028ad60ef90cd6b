package game

// Direction is one of the four shift directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// NoDirection signals that no shift was chosen (terminal or leaf node).
const NoDirection Direction = -1

// Directions lists the four shift directions in a fixed iteration order.
var Directions = []Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Vector returns the unit step for scanning the board in this direction.
func (d Direction) Vector() Position {
	switch d {
	case Up:
		return Position{Row: -1}
	case Down:
		return Position{Row: 1}
	case Left:
		return Position{Col: -1}
	case Right:
		return Position{Col: 1}
	default:
		return Position{}
	}
}

// Position identifies a cell on the board.
type Position struct {
	Row int
	Col int
}

// Step returns the position one vector step away.
func (p Position) Step(vec Position) Position {
	return Position{Row: p.Row + vec.Row, Col: p.Col + vec.Col}
}
