package manager

import (
	"errors"

	"snake-matrix/game/entity"
	"snake-matrix/game/types"
)

// ErrExhausted means the snake is long enough that no apple is placed any
// more. The game treats it as a win.
var ErrExhausted = errors.New("apple placement exhausted")

// Random is the source apple positions are drawn from. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Random interface {
	Seed(seed uint64)
	Intn(n int) int
}

type FoodManager struct {
	rng          Random
	collisionMgr *CollisionManager
}

func NewFoodManager(rng Random, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Seed reseeds the underlying source. Called once per session.
func (fm *FoodManager) Seed(seed uint64) {
	fm.rng.Seed(seed)
}

// PlaceApple picks a random cell not covered by the snake. The capacity
// check is on length only, not on the number of free cells.
func (fm *FoodManager) PlaceApple(s *entity.Snake) (types.Point, error) {
	if s.Len >= types.MaxLength-1 {
		return types.Point{}, ErrExhausted
	}

	for {
		apple := types.Point{
			X: int8(fm.rng.Intn(types.GridWidth)),
			Y: int8(fm.rng.Intn(types.GridHeight)),
		}

		if !fm.collisionMgr.Occupied(apple, s) {
			return apple, nil
		}
	}
}
