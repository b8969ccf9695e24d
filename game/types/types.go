package types

import "fmt"

// Grid dimensions of the LED matrix.
const (
	GridWidth  = 5
	GridHeight = 5
)

// MaxLength is the segment capacity of the snake buffer. Apple placement
// stops at MaxLength-1 so a free cell always remains.
const MaxLength = 25

// LED intensities.
const (
	SnakeBrightness uint8 = 255
	AppleBrightness uint8 = 50
)

// Point is a cell on the grid.
type Point struct {
	X, Y int8
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four headings the snake can take.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Delta returns the step applied to the head when moving in d.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	}
	panic(fmt.Sprintf("types: unknown direction %d", d))
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) Valid() bool {
	return d <= Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}
