package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one generated album record.
type Record struct {
	Catalog    string
	AlbumID    string
	ReleaseID  string
	Title      string
	Artist     string
	OutputPath string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Store manages history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at path and applies
// migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const recordColumns = "catalog, album_id, release_id, title, artist, output_path, created_at, updated_at"

// Lookup returns the record for catalog, or nil when none exists.
func (s *Store) Lookup(ctx context.Context, catalog string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE catalog = ?`, catalog)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup record: %w", err)
	}
	return record, nil
}

// Record inserts or replaces the record for rec.Catalog. The creation time of
// an existing record is preserved.
func (s *Store) Record(ctx context.Context, rec *Record) error {
	if rec == nil {
		return errors.New("record is nil")
	}
	if strings.TrimSpace(rec.Catalog) == "" || strings.TrimSpace(rec.AlbumID) == "" {
		return errors.New("record requires catalog and album id")
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO records (`+recordColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(catalog) DO UPDATE SET
             album_id = excluded.album_id,
             release_id = excluded.release_id,
             title = excluded.title,
             artist = excluded.artist,
             output_path = excluded.output_path,
             updated_at = excluded.updated_at`,
		rec.Catalog,
		rec.AlbumID,
		rec.ReleaseID,
		rec.Title,
		rec.Artist,
		nullableString(rec.OutputPath),
		rec.CreatedAt.UTC().Format(timeLayout),
		rec.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("record %s: %w", rec.Catalog, err)
	}
	return nil
}

// List returns all records, most recently updated first.
func (s *Store) List(ctx context.Context) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+recordColumns+` FROM records ORDER BY updated_at DESC, catalog`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		record     Record
		outputPath sql.NullString
		createdAt  string
		updatedAt  string
	)
	if err := row.Scan(
		&record.Catalog,
		&record.AlbumID,
		&record.ReleaseID,
		&record.Title,
		&record.Artist,
		&outputPath,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	record.OutputPath = outputPath.String
	record.CreatedAt = parseTime(createdAt)
	record.UpdatedAt = parseTime(updatedAt)
	return &record, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func parseTime(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
