package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/pagerec/internal/adapter/storage/sqlite/sqlitedb"
	"github.com/bnema/pagerec/internal/domain"
	"github.com/bnema/pagerec/internal/port"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Store struct {
	db      *sql.DB
	queries *sqlitedb.Queries
}

var hookOnce sync.Once

func registerHook() {
	hookOnce.Do(func() {
		sqlite.RegisterConnectionHook(func(conn sqlite.ExecQuerierContext, dsn string) error {
			pragmas := []string{
				"PRAGMA journal_mode = WAL",
				"PRAGMA busy_timeout = 5000",
				"PRAGMA synchronous = NORMAL",
				"PRAGMA foreign_keys = ON",
				"PRAGMA cache_size = -8000", // 8MB
			}
			for _, p := range pragmas {
				if _, err := conn.ExecContext(context.Background(), p, nil); err != nil {
					return fmt.Errorf("execute %s: %w", p, err)
				}
			}
			return nil
		})
	})
}

func NewStore(dataDir string) (*Store, error) {
	registerHook()

	dbPath := filepath.Join(dataDir, "pagerec.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single connection for SQLite (WAL allows concurrent reads but only one writer)
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{
		db:      db,
		queries: sqlitedb.New(db),
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Insert(ctx context.Context, r *domain.Recording) error {
	err := s.queries.InsertRecording(ctx, sqlitedb.InsertRecordingParams{
		ID:        r.ID,
		Url:       r.URL,
		Status:    string(r.Status),
		Output:    r.Output,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	})
	if err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id int64) (*domain.Recording, error) {
	row, err := s.queries.GetRecording(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return recordingFromRow(row), nil
}

func (s *Store) ListByURLAndStatus(ctx context.Context, url string, status domain.Status) ([]*domain.Recording, error) {
	rows, err := s.queries.ListRecordingsByURLAndStatus(ctx, sqlitedb.ListRecordingsByURLAndStatusParams{
		Url:    url,
		Status: string(status),
	})
	if err != nil {
		return nil, err
	}
	return recordingListFromRows(rows), nil
}

func (s *Store) ListAll(ctx context.Context) ([]*domain.Recording, error) {
	rows, err := s.queries.ListAllRecordings(ctx)
	if err != nil {
		return nil, err
	}
	return recordingListFromRows(rows), nil
}

func (s *Store) UpdateStatus(ctx context.Context, id int64, status domain.Status, errMsg string) (int64, error) {
	n, err := s.queries.UpdateRecordingStatus(ctx, sqlitedb.UpdateRecordingStatusParams{
		Status:    string(status),
		Error:     sql.NullString{String: errMsg, Valid: errMsg != ""},
		UpdatedAt: time.Now().UTC(),
		ID:        id,
	})
	if err != nil {
		return 0, translateConstraint(err)
	}
	return n, nil
}

func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	return s.queries.DeleteRecording(ctx, id)
}

// translateConstraint maps the two uniqueness rules of the recordings table
// onto domain errors.
func translateConstraint(err error) error {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
		return err
	}

	msg := sqliteErr.Error()
	switch {
	case sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || strings.Contains(msg, "recordings.id"):
		return fmt.Errorf("%w: %v", domain.ErrDuplicateID, err)
	case strings.Contains(msg, "recordings.url"):
		return fmt.Errorf("%w: %v", domain.ErrDuplicateURL, err)
	}
	return err
}

func recordingFromRow(row sqlitedb.Recording) *domain.Recording {
	return &domain.Recording{
		ID:           row.ID,
		URL:          row.Url,
		Status:       domain.Status(row.Status),
		Output:       row.Output,
		ErrorMessage: row.Error.String,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func recordingListFromRows(rows []sqlitedb.Recording) []*domain.Recording {
	result := make([]*domain.Recording, len(rows))
	for i, row := range rows {
		result[i] = recordingFromRow(row)
	}
	return result
}

var _ port.RecordingStore = (*Store)(nil)
