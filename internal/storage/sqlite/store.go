package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	apperrors "duke/internal/errors"
	"duke/internal/logging"
	"duke/internal/storage"
	"duke/internal/storage/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Store keeps persisted lines in a SQLite table, one row per line.
type Store struct {
	db *sql.DB
}

var _ storage.Store = (*Store)(nil)

// New opens (or creates) the database at dbPath and runs migrations.
// The parent directory is created with dirPerm when it is missing.
func New(ctx context.Context, dbPath string, dirPerm os.FileMode) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), dirPerm); err != nil {
			return nil, HandleDatabaseError("create data directory", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, HandleDatabaseError("open database", err)
	}
	if dbPath == ":memory:" {
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, HandleDatabaseError("run migrations", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// ReadLines returns the stored lines ordered by position
func (s *Store) ReadLines(ctx context.Context) ([]string, error) {
	query := `SELECT position, line FROM task_records ORDER BY position ASC`

	records, err := QueryMultiple(ctx, s.db, query, ScanRecords, "task records")
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, storage.ErrNotExist
	}

	lines := make([]string, len(records))
	for i, record := range records {
		lines[i] = record.Line
	}
	logging.Debugf("read %d task records\n", len(lines))
	return lines, nil
}

// WriteLines replaces every stored line inside a single transaction
func (s *Store) WriteLines(ctx context.Context, lines []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM task_records`); err != nil {
		return HandleDatabaseError("clear task records", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO task_records (position, line) VALUES (?, ?)`)
	if err != nil {
		return HandleDatabaseError("prepare insert", err)
	}
	defer stmt.Close()

	for i, line := range lines {
		if _, err := stmt.ExecContext(ctx, i+1, line); err != nil {
			return HandleDatabaseError("insert task record", err).WithContext("position", i+1)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit task records", err)
	}
	logging.Debugf("wrote %d task records\n", len(lines))
	return nil
}

// HandleDatabaseError converts database errors to structured app errors
func HandleDatabaseError(operation string, err error) *apperrors.AppError {
	return apperrors.NewPersistenceError(operation, err)
}
