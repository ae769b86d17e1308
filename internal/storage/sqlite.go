// Package storage provides the SQLite persistence layer backing the
// categorization engine's repositories.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ndhoang/moneymind/internal/categorize"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage backs every repository the categorization engine consumes.
var (
	_ categorize.MerchantRuleRepository = (*SQLiteStorage)(nil)
	_ categorize.KeywordRepository      = (*SQLiteStorage)(nil)
	_ categorize.UserMappingRepository  = (*SQLiteStorage)(nil)
)

// SQLiteStorage implements the categorize repository interfaces using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists for file-backed databases
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
