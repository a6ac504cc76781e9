package cmd

import (
	"database/sql"
	"fmt"

	"github.com/vibast-solutions/ms-go-session-keys/app/repository"
	"github.com/vibast-solutions/ms-go-session-keys/config"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

// openDB opens and pings the connection pool shared by every request.
func openDB(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open(cfg.DatabaseDriver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Pool.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Pool.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Pool.ConnMaxLifetime)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func dialectFor(cfg *config.Config) repository.Dialect {
	if cfg.DatabaseDriver == config.DriverMySQL {
		return repository.DialectMySQL
	}
	return repository.DialectPostgres
}
