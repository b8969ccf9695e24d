package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// HistoryKey is the storage slot holding finished sessions.
	HistoryKey = "history"
	// MaxRecords caps the stored history; the oldest records go first.
	MaxRecords = 50
)

// SessionRecord describes one finished session.
type SessionRecord struct {
	ID        string    `json:"id"`
	Score     int       `json:"score"`
	Won       bool      `json:"won"`
	Outcome   string    `json:"outcome"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func (r SessionRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

type StatsManager struct {
	store Store
}

func NewStatsManager(store Store) *StatsManager {
	return &StatsManager{store: store}
}

// History returns the stored records, oldest first.
func (sm *StatsManager) History() ([]SessionRecord, error) {
	data, ok, err := sm.store.Get(HistoryKey)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if !ok || len(data) == 0 {
		return nil, nil
	}

	var records []SessionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return records, nil
}

// Record appends rec to the history. A corrupt history is replaced rather
// than blocking new records.
func (sm *StatsManager) Record(rec SessionRecord) error {
	records, err := sm.History()
	if err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &syntaxErr) && !errors.As(err, &typeErr) {
			return err
		}
		records = nil
	}

	records = append(records, rec)
	if len(records) > MaxRecords {
		records = records[len(records)-MaxRecords:]
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := sm.store.Put(HistoryKey, data); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Summary is aggregate information over the stored history.
type Summary struct {
	Games        int
	Wins         int
	BestScore    int
	AverageScore float64
}

func (sm *StatsManager) Summary() (Summary, error) {
	records, err := sm.History()
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	total := 0
	for _, r := range records {
		sum.Games++
		if r.Won {
			sum.Wins++
		}
		if r.Score > sum.BestScore {
			sum.BestScore = r.Score
		}
		total += r.Score
	}
	if sum.Games > 0 {
		sum.AverageScore = float64(total) / float64(sum.Games)
	}
	return sum, nil
}
