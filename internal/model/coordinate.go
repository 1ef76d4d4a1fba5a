package model

import (
	"fmt"
	"strconv"
)

// GridSize is the fixed dimension of every board
const GridSize = 10

// Coordinate identifies a cell on the board
type Coordinate struct {
	Row int // 0-indexed, 'A' is row 0
	Col int // 0-indexed, column "1" is col 0
}

// ParseCoordinate converts a label such as "B5" into a Coordinate.
// The label must be a single letter A-J followed by a number 1-10.
func ParseCoordinate(label string) (Coordinate, error) {
	if len(label) < 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, label)
	}
	letter := label[0]
	if letter < 'A' || letter >= 'A'+GridSize {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, label)
	}
	digits := label[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, label)
		}
	}
	number, err := strconv.Atoi(digits)
	if err != nil || number < 1 || number > GridSize {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, label)
	}
	return Coordinate{Row: int(letter - 'A'), Col: number - 1}, nil
}

// Label returns the human-readable form of the coordinate, e.g. "B5".
// Off-grid coordinates are rendered as "(row,col)".
func (c Coordinate) Label() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string(rune('A'+c.Row)) + strconv.Itoa(c.Col+1)
}

// String implements fmt.Stringer
func (c Coordinate) String() string {
	return c.Label()
}

// InBounds returns true if the coordinate lies on the grid
func (c Coordinate) InBounds() bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}

// Neighbors returns the on-grid cells surrounding c, diagonals included
func (c Coordinate) Neighbors() []Coordinate {
	result := make([]Coordinate, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Coordinate{Row: c.Row + dr, Col: c.Col + dc}
			if n.InBounds() {
				result = append(result, n)
			}
		}
	}
	return result
}

// Direction describes where another coordinate lies relative to this one
type Direction int

const (
	DirectionSame Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
	DirectionLeftUp
	DirectionLeftDown
	DirectionRightUp
	DirectionRightDown
)

var directionNames = map[Direction]string{
	DirectionSame:      "same",
	DirectionLeft:      "left",
	DirectionRight:     "right",
	DirectionUp:        "up",
	DirectionDown:      "down",
	DirectionLeftUp:    "left-up",
	DirectionLeftDown:  "left-down",
	DirectionRightUp:   "right-up",
	DirectionRightDown: "right-down",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// IsDiagonal returns true for any direction off the shared row or column
func (d Direction) IsDiagonal() bool {
	switch d {
	case DirectionLeftUp, DirectionLeftDown, DirectionRightUp, DirectionRightDown:
		return true
	default:
		return false
	}
}

// DirectionTo reports where other lies relative to c
func (c Coordinate) DirectionTo(other Coordinate) Direction {
	switch {
	case c == other:
		return DirectionSame
	case c.Row == other.Row:
		if other.Col < c.Col {
			return DirectionLeft
		}
		return DirectionRight
	case c.Col == other.Col:
		if other.Row < c.Row {
			return DirectionUp
		}
		return DirectionDown
	case other.Col < c.Col && other.Row < c.Row:
		return DirectionLeftUp
	case other.Col < c.Col:
		return DirectionLeftDown
	case other.Row < c.Row:
		return DirectionRightUp
	default:
		return DirectionRightDown
	}
}

// SpanLength returns the number of cells covered between a and b inclusive,
// measured along the longer axis
func SpanLength(a, b Coordinate) int {
	return max(abs(a.Row-b.Row), abs(a.Col-b.Col)) + 1
}

// RunBetween returns the straight line of cells from a to b inclusive,
// ordered from the lower index. ok is false when a and b are diagonal.
func RunBetween(a, b Coordinate) (run []Coordinate, ok bool) {
	if a.DirectionTo(b).IsDiagonal() {
		return nil, false
	}
	if a.Row == b.Row {
		lo, hi := min(a.Col, b.Col), max(a.Col, b.Col)
		run = make([]Coordinate, 0, hi-lo+1)
		for col := lo; col <= hi; col++ {
			run = append(run, Coordinate{Row: a.Row, Col: col})
		}
		return run, true
	}
	lo, hi := min(a.Row, b.Row), max(a.Row, b.Row)
	run = make([]Coordinate, 0, hi-lo+1)
	for row := lo; row <= hi; row++ {
		run = append(run, Coordinate{Row: row, Col: a.Col})
	}
	return run, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
