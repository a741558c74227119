package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/ports"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// CredentialStore implements the ports.CredentialStore interface using SQLite.
// The API credential is the only state persisted across runs; everything else
// the dashboard shows is refetched per cycle.
type CredentialStore struct {
	db     *sql.DB
	logger ports.Logger
}

// Config holds configuration for the SQLite credential store.
type Config struct {
	DBPath string
	Logger ports.Logger
}

// NewCredentialStore creates a new SQLite credential store instance.
func NewCredentialStore(cfg Config) (*CredentialStore, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for SQLite credential store")
	}
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "./data/dashboard.db" // Default path
	}

	// Create data directory if it doesn't exist
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			err = fmt.Errorf("failed to create data directory '%s': %w", filepath.Dir(dbPath), err)
			cfg.Logger.Error(context.Background(), err, "SQLite credential store initialization failed")
			return nil, err
		}
	}

	// Open database connection
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		err = fmt.Errorf("failed to open database at '%s': %w", dbPath, err)
		cfg.Logger.Error(context.Background(), err, "SQLite credential store initialization failed")
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close() // Close the connection if ping fails
		err = fmt.Errorf("failed to ping database at '%s': %w", dbPath, err)
		cfg.Logger.Error(context.Background(), err, "SQLite credential store initialization failed")
		return nil, err
	}

	// Set connection pool settings (important for SQLite)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	store := &CredentialStore{db: db, logger: cfg.Logger}

	if err := store.initializeSchema(context.Background()); err != nil {
		db.Close()
		err = fmt.Errorf("failed to initialize database schema: %w", err)
		cfg.Logger.Error(context.Background(), err, "SQLite credential store initialization failed")
		return nil, err
	}

	cfg.Logger.Info(context.Background(), "SQLite credential store ready", map[string]interface{}{"path": dbPath})
	return store, nil
}

// initializeSchema creates the credential table if it doesn't exist.
// A fixed primary key keeps the table at a single row.
func (s *CredentialStore) initializeSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS credential (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		token TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%v: %w", err, ports.ErrStoreUnavailable)
	}
	return nil
}

// Load returns the stored credential, or the empty string when none is saved.
func (s *CredentialStore) Load(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, `SELECT token FROM credential WHERE id = 1`).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		s.logger.Error(ctx, err, "Failed to load credential")
		return "", fmt.Errorf("%v: %w", err, ports.ErrStoreQueryFailed)
	}
	return token, nil
}

// Save stores the credential, replacing any previous one.
func (s *CredentialStore) Save(ctx context.Context, token string) error {
	const query = `
	INSERT INTO credential (id, token, updated_at) VALUES (1, ?, ?)
	ON CONFLICT(id) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, token, time.Now().UTC()); err != nil {
		s.logger.Error(ctx, err, "Failed to save credential")
		return fmt.Errorf("%v: %w", err, ports.ErrStoreQueryFailed)
	}
	s.logger.Debug(ctx, "Credential saved")
	return nil
}

// Clear removes the stored credential.
func (s *CredentialStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM credential WHERE id = 1`); err != nil {
		s.logger.Error(ctx, err, "Failed to clear credential")
		return fmt.Errorf("%v: %w", err, ports.ErrStoreQueryFailed)
	}
	s.logger.Debug(ctx, "Credential cleared")
	return nil
}

// Close closes the underlying database connection.
func (s *CredentialStore) Close() error {
	return s.db.Close()
}
