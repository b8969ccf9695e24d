package manager

import "snake-matrix/game/types"

// TiltThreshold is the reading magnitude a tilt must exceed to steer.
const TiltThreshold = 350

// DirectionManager turns accelerometer readings into headings.
type DirectionManager struct {
	threshold int32
}

func NewDirectionManager() *DirectionManager {
	return &DirectionManager{threshold: TiltThreshold}
}

// Resolve returns the heading proposed by the tilt (x, y). ok is false when
// the tilt is inside the dead zone or every candidate would reverse the
// snake onto itself; the caller then keeps current.
func (dm *DirectionManager) Resolve(current types.Direction, x, y int32) (dir types.Direction, ok bool) {
	if x < -dm.threshold && current != types.Right {
		return types.Left, true
	}
	if x > dm.threshold && current != types.Left {
		return types.Right, true
	}
	if y < -dm.threshold && current != types.Down {
		return types.Up, true
	}
	if y > dm.threshold && current != types.Up {
		return types.Down, true
	}
	return current, false
}
