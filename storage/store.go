// Package storage holds the key-value stores the high score and session
// history are persisted in.
package storage

import (
	"errors"
	"fmt"
)

// Store maps string keys to byte values. Get reports a missing key with
// ok == false and a nil error.
type Store interface {
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
	Close() error
}

// Kinds accepted by Open.
const (
	KindMemory   = "memory"
	KindFile     = "file"
	KindPostgres = "postgres"
)

var ErrUnknownKind = errors.New("unknown store kind")

// Open returns the store of the given kind. target is the file path for
// KindFile and the connection string for KindPostgres.
func Open(kind, target string) (Store, error) {
	switch kind {
	case KindMemory:
		return NewMemoryStore(), nil
	case KindFile:
		s, err := NewFileStore(target)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindPostgres:
		s, err := OpenSQLStore(target)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
