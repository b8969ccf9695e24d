package entity

import (
	"testing"

	"snake-matrix/game/types"
)

func snakeOf(points ...types.Point) *Snake {
	s := NewSnake(points[0])
	for i, p := range points {
		s.Body[i] = p
	}
	s.Len = len(points) - 1
	return s
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(StartPosition)
	if s.Len != 0 {
		t.Fatalf("Len = %d, want 0", s.Len)
	}
	if s.Head() != (types.Point{X: 2, Y: 3}) {
		t.Fatalf("Head = %v", s.Head())
	}
	if got := len(s.Segments()); got != 1 {
		t.Fatalf("len(Segments) = %d, want 1", got)
	}
}

func TestMoveShiftsSegments(t *testing.T) {
	for _, dir := range []types.Direction{types.Up, types.Right, types.Down, types.Left} {
		s := snakeOf(
			types.Point{X: 2, Y: 2},
			types.Point{X: 2, Y: 3},
			types.Point{X: 3, Y: 3},
			types.Point{X: 3, Y: 4},
		)
		before := s.Body

		s.Move(dir)

		for i := 1; i <= s.Len; i++ {
			if s.Body[i] != before[i-1] {
				t.Errorf("%s: segment %d = %v, want %v", dir, i, s.Body[i], before[i-1])
			}
		}
		d := dir.Delta()
		want := types.Point{X: before[0].X + d.X, Y: before[0].Y + d.Y}
		if s.Head() != want {
			t.Errorf("%s: head = %v, want %v", dir, s.Head(), want)
		}
	}
}

func TestMoveLeavesInactiveSegments(t *testing.T) {
	s := snakeOf(types.Point{X: 1, Y: 1}, types.Point{X: 1, Y: 2})
	stale := types.Point{X: 4, Y: 4}
	s.Body[2] = stale

	s.Move(types.Right)

	if s.Body[2] != stale {
		t.Fatalf("inactive segment changed to %v", s.Body[2])
	}
}

func TestMovePanicsOnUnknownDirection(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewSnake(StartPosition).Move(types.Direction(9))
}

func TestExtend(t *testing.T) {
	s := snakeOf(types.Point{X: 2, Y: 2}, types.Point{X: 2, Y: 3})

	s.Extend()

	if s.Len != 2 {
		t.Fatalf("Len = %d, want 2", s.Len)
	}
	if s.Body[2] != s.Body[1] {
		t.Fatalf("new tail %v, want copy of old tail %v", s.Body[2], s.Body[1])
	}

	s.Move(types.Up)
	want := []types.Point{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}
	for i, p := range want {
		if s.Body[i] != p {
			t.Errorf("after move segment %d = %v, want %v", i, s.Body[i], p)
		}
	}
}

func TestExtendUpToCapacity(t *testing.T) {
	s := NewSnake(StartPosition)
	for i := 0; i < types.MaxLength-2; i++ {
		s.Extend()
	}
	if s.Len != types.MaxLength-2 {
		t.Fatalf("Len = %d", s.Len)
	}

	s.Extend()
	if s.Len != types.MaxLength-1 {
		t.Fatalf("Len = %d, want %d", s.Len, types.MaxLength-1)
	}

	// Past capacity only the counter moves.
	s.Extend()
	if s.Len != types.MaxLength {
		t.Fatalf("Len = %d, want %d", s.Len, types.MaxLength)
	}
	if got := len(s.Segments()); got != types.MaxLength {
		t.Fatalf("len(Segments) = %d, want %d", got, types.MaxLength)
	}
	s.Move(types.Left)
}

func TestReset(t *testing.T) {
	s := snakeOf(types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0})
	s.Reset(StartPosition)
	if s.Len != 0 || s.Head() != StartPosition {
		t.Fatalf("after Reset Len=%d head=%v", s.Len, s.Head())
	}
}
