package manager

import (
	"snake-matrix/game/entity"
	"snake-matrix/game/types"
)

type CollisionManager struct {
	width, height int8
}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{
		width:  types.GridWidth,
		height: types.GridHeight,
	}
}

// InBounds reports whether p lies on the grid.
func (cm *CollisionManager) InBounds(p types.Point) bool {
	if p.X < 0 || p.X >= cm.width {
		return false
	}
	if p.Y < 0 || p.Y >= cm.height {
		return false
	}
	return true
}

// HeadCollidesWithBody reports whether the head shares a cell with any
// active tail segment.
func (cm *CollisionManager) HeadCollidesWithBody(s *entity.Snake) bool {
	segments := s.Segments()
	head := segments[0]
	for _, p := range segments[1:] {
		if samePoint(head, p) {
			return true
		}
	}
	return false
}

func (cm *CollisionManager) HeadOnApple(head, apple types.Point) bool {
	return samePoint(head, apple)
}

// Occupied reports whether p is covered by any active segment, head included.
func (cm *CollisionManager) Occupied(p types.Point, s *entity.Snake) bool {
	for _, seg := range s.Segments() {
		if samePoint(p, seg) {
			return true
		}
	}
	return false
}

// x first, then y.
func samePoint(a, b types.Point) bool {
	if a.X != b.X {
		return false
	}
	return a.Y == b.Y
}
