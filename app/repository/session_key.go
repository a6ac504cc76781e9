package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/vibast-solutions/ms-go-session-keys/app/entity"
	"github.com/vibast-solutions/ms-go-session-keys/app/metrics"
)

type SessionKeyRepository struct {
	db      DBTX
	dialect Dialect
}

func NewSessionKeyRepository(db DBTX, dialect Dialect) *SessionKeyRepository {
	return &SessionKeyRepository{db: db, dialect: dialect}
}

func (r *SessionKeyRepository) Create(ctx context.Context, key *entity.SessionKey) error {
	query := `
		INSERT INTO session_keys (id, session_key)
		VALUES (?, ?)
	`
	done := metrics.ObserveQuery("create")
	_, err := r.db.ExecContext(ctx, r.dialect.rebind(query), key.ID.String(), key.SessionKey)
	done(err)
	return err
}

func (r *SessionKeyRepository) FindAll(ctx context.Context) ([]*entity.SessionKey, error) {
	query := `
		SELECT id, session_key
		FROM session_keys
		ORDER BY id
	`
	done := metrics.ObserveQuery("find_all")
	keys, err := r.findMany(ctx, query)
	done(err)
	return keys, err
}

// FindByID returns nil without an error when no row matches.
func (r *SessionKeyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SessionKey, error) {
	query := `
		SELECT id, session_key
		FROM session_keys WHERE id = ?
	`
	done := metrics.ObserveQuery("find_by_id")
	row := r.db.QueryRowContext(ctx, r.dialect.rebind(query), id.String())
	key, err := scanSessionKey(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		done(nil)
		return nil, nil
	}
	done(err)
	if err != nil {
		return nil, err
	}

	return key, nil
}

func (r *SessionKeyRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]*entity.SessionKey, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make([]*entity.SessionKey, 0)
	for rows.Next() {
		key, err := scanSessionKey(rows.Scan)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return keys, nil
}

type rowScanner func(dest ...interface{}) error

func scanSessionKey(scan rowScanner) (*entity.SessionKey, error) {
	key := &entity.SessionKey{}
	if err := scan(&key.ID, &key.SessionKey); err != nil {
		return nil, err
	}

	return key, nil
}
