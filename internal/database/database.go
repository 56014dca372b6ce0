package database

import (
	"context"
	"fmt"
	"time"

	"classroom-player/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver
)

const pingTimeout = 5 * time.Second

// NewSQLXOracleDB opens an Oracle connection pool through go-ora and pings it.
func NewSQLXOracleDB(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("oracle", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open Oracle database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	logger.Get().Info("Successfully connected to Oracle database")
	return db, nil
}
