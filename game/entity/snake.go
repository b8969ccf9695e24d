package entity

import (
	"fmt"

	"snake-matrix/game/types"
)

// Start position and heading of every new snake.
var (
	StartPosition  = types.Point{X: 2, Y: 3}
	StartDirection = types.Up
)

// Snake is a fixed-capacity body. Body[0] is the head and Body[1:Len+1] the
// active tail; anything past Len is stale and ignored. Len doubles as the
// score.
type Snake struct {
	Body [types.MaxLength]types.Point
	Len  int
}

func NewSnake(start types.Point) *Snake {
	s := &Snake{}
	s.Body[0] = start
	return s
}

// Reset puts the snake back to a lone head at start.
func (s *Snake) Reset(start types.Point) {
	*s = Snake{}
	s.Body[0] = start
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// Segments returns the active part of the body, head first.
func (s *Snake) Segments() []types.Point {
	return s.Body[:s.active()]
}

// Move shifts every active segment onto the one in front of it, tail first,
// then steps the head once in dir.
func (s *Snake) Move(dir types.Direction) {
	if !dir.Valid() {
		panic(fmt.Sprintf("entity: move with unknown direction %d", dir))
	}
	for i := s.active() - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	d := dir.Delta()
	s.Body[0].X += d.X
	s.Body[0].Y += d.Y
}

// Extend grows the snake by one. The new tail starts on top of the old one
// and separates on the next Move. Past capacity only Len changes.
func (s *Snake) Extend() {
	s.Len++
	if s.Len < types.MaxLength {
		s.Body[s.Len] = s.Body[s.Len-1]
	}
}

func (s *Snake) active() int {
	n := s.Len + 1
	if n > types.MaxLength {
		n = types.MaxLength
	}
	return n
}
