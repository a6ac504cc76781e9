package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/vibast-solutions/ms-go-session-keys/app/entity"
	"github.com/vibast-solutions/ms-go-session-keys/app/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

const (
	insertSessionKeyQuery      = `(?s)INSERT INTO session_keys \(id, session_key\)\s+VALUES \(\$1, \$2\)`
	insertSessionKeyMySQLQuery = `(?s)INSERT INTO session_keys \(id, session_key\)\s+VALUES \(\?, \?\)`
	findAllSessionKeysQuery    = `(?s)SELECT id, session_key\s+FROM session_keys\s+ORDER BY id`
	findSessionKeyByIDQuery    = `(?s)SELECT id, session_key\s+FROM session_keys WHERE id = \$1`
)

var sessionKeyColumns = []string{
	"id",
	"session_key",
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return db, mock, func() { _ = db.Close() }
}

func TestSessionKeyRepository_Create(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewSessionKeyRepository(db, repository.DialectPostgres)
	key := &entity.SessionKey{
		ID:         uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		SessionKey: "Hallo",
	}

	mock.ExpectExec(insertSessionKeyQuery).
		WithArgs(key.ID.String(), key.SessionKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), key); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionKeyRepository_CreateMySQLPlaceholders(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewSessionKeyRepository(db, repository.DialectMySQL)
	key := &entity.SessionKey{ID: uuid.New(), SessionKey: "value"}

	mock.ExpectExec(insertSessionKeyMySQLQuery).
		WithArgs(key.ID.String(), key.SessionKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), key); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionKeyRepository_FindAll(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewSessionKeyRepository(db, repository.DialectPostgres)

	mock.ExpectQuery(findAllSessionKeysQuery).
		WillReturnRows(sqlmock.NewRows(sessionKeyColumns).
			AddRow("11111111-1111-1111-1111-111111111111", "Hallo").
			AddRow("22222222-2222-2222-2222-222222222222", "Welt"))

	keys, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
	if keys[0].ID.String() != "11111111-1111-1111-1111-111111111111" || keys[0].SessionKey != "Hallo" {
		t.Fatalf("unexpected first key: %+v", keys[0])
	}
	if keys[1].SessionKey != "Welt" {
		t.Fatalf("unexpected second key: %+v", keys[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionKeyRepository_FindAllEmpty(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewSessionKeyRepository(db, repository.DialectPostgres)

	mock.ExpectQuery(findAllSessionKeysQuery).
		WillReturnRows(sqlmock.NewRows(sessionKeyColumns))

	keys, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if keys == nil || len(keys) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", keys)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionKeyRepository_FindAllQueryError(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewSessionKeyRepository(db, repository.DialectPostgres)
	dbErr := errors.New("connection refused")

	mock.ExpectQuery(findAllSessionKeysQuery).WillReturnError(dbErr)

	keys, err := repo.FindAll(context.Background())
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected %v, got %v", dbErr, err)
	}
	if keys != nil {
		t.Fatalf("expected nil keys on error, got %#v", keys)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionKeyRepository_FindAllRowError(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewSessionKeyRepository(db, repository.DialectPostgres)
	rowErr := errors.New("connection reset")

	mock.ExpectQuery(findAllSessionKeysQuery).
		WillReturnRows(sqlmock.NewRows(sessionKeyColumns).
			AddRow("11111111-1111-1111-1111-111111111111", "Hallo").
			AddRow("22222222-2222-2222-2222-222222222222", "Welt").
			RowError(1, rowErr))

	if _, err := repo.FindAll(context.Background()); !errors.Is(err, rowErr) {
		t.Fatalf("expected %v, got %v", rowErr, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionKeyRepository_FindByID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewSessionKeyRepository(db, repository.DialectPostgres)
	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	mock.ExpectQuery(findSessionKeyByIDQuery).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows(sessionKeyColumns).AddRow(id.String(), "Hallo"))

	key, err := repo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if key == nil || key.ID != id || key.SessionKey != "Hallo" {
		t.Fatalf("unexpected key: %+v", key)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionKeyRepository_FindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewSessionKeyRepository(db, repository.DialectPostgres)
	id := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	mock.ExpectQuery(findSessionKeyByIDQuery).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows(sessionKeyColumns))

	key, err := repo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("expected no error for missing row, got %v", err)
	}
	if key != nil {
		t.Fatalf("expected nil key, got %+v", key)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionKeyRepository_FindByIDError(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewSessionKeyRepository(db, repository.DialectPostgres)
	id := uuid.New()
	dbErr := errors.New("pool exhausted")

	mock.ExpectQuery(findSessionKeyByIDQuery).
		WithArgs(id.String()).
		WillReturnError(dbErr)

	key, err := repo.FindByID(context.Background(), id)
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected %v, got %v", dbErr, err)
	}
	if key != nil {
		t.Fatalf("expected nil key on error, got %+v", key)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
