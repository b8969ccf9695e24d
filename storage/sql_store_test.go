package storage

import (
	"bytes"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockStore(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	mock.ExpectExec(regexp.QuoteMeta(createTableQuery)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s, err := NewSQLStore(db)
	if err != nil {
		t.Fatalf("NewSQLStore: %v", err)
	}
	return s, mock
}

func TestSQLStoreGet(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs("highscore").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte{9}))

	v, ok, err := s.Get("highscore")
	if err != nil || !ok || !bytes.Equal(v, []byte{9}) {
		t.Fatalf("Get = %v, %t, %v", v, ok, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSQLStoreGetMissing(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs("highscore").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	v, ok, err := s.Get("highscore")
	if err != nil || ok || v != nil {
		t.Fatalf("Get = %v, %t, %v", v, ok, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSQLStoreGetError(t *testing.T) {
	s, mock := newMockStore(t)
	dbErr := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs("highscore").
		WillReturnError(dbErr)

	if _, _, err := s.Get("highscore"); !errors.Is(err, dbErr) {
		t.Fatalf("err = %v, want wrapped %v", err, dbErr)
	}
}

func TestSQLStorePut(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(putQuery)).
		WithArgs("highscore", []byte{14}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Put("highscore", []byte{14}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSQLStoreCreateTableError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(createTableQuery)).
		WillReturnError(errors.New("permission denied"))

	if _, err := NewSQLStore(db); err == nil {
		t.Fatal("expected error")
	}
}
