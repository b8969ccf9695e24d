package manager

import "fmt"

// HighScoreKey is the storage slot holding the best score.
const HighScoreKey = "highscore"

// Store is the persistent key-value storage. A missing key is reported with
// ok == false and a nil error.
type Store interface {
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
}

// Outcome is how a finished session is announced.
type Outcome int

const (
	// OutcomeDiscarded: nothing was scored, nothing is shown or stored.
	OutcomeDiscarded Outcome = iota
	OutcomeGameOver
	OutcomeNewHighScore
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDiscarded:
		return "discarded"
	case OutcomeGameOver:
		return "game over"
	case OutcomeNewHighScore:
		return "new high score"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

type StateManager struct {
	store Store
}

func NewStateManager(store Store) *StateManager {
	return &StateManager{store: store}
}

// HighScore returns the stored best score, if any.
func (sm *StateManager) HighScore() (uint8, bool, error) {
	data, ok, err := sm.store.Get(HighScoreKey)
	if err != nil {
		return 0, false, fmt.Errorf("read high score: %w", err)
	}
	if !ok || len(data) == 0 {
		return 0, false, nil
	}
	return data[0], true, nil
}

// Report settles a finished session's score against the stored high score
// and writes it back when it is beaten. A zero score never touches the
// store. On a read error nothing is written and the outcome is a plain
// game over.
func (sm *StateManager) Report(score int) (Outcome, error) {
	if score <= 0 {
		return OutcomeDiscarded, nil
	}

	best, ok, err := sm.HighScore()
	if err != nil {
		return OutcomeGameOver, err
	}
	if ok && score <= int(best) {
		return OutcomeGameOver, nil
	}

	if err := sm.store.Put(HighScoreKey, []byte{uint8(score)}); err != nil {
		return OutcomeGameOver, fmt.Errorf("write high score: %w", err)
	}
	return OutcomeNewHighScore, nil
}
