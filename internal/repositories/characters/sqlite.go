package characters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/charsheet/internal/domain/character"
	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
	"github.com/KirkDiggler/charsheet/internal/uuid"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS characters (
	id TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL,
	document BLOB NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_characters_owner ON characters (owner_id);`

// SQLiteRepository stores character documents in a single SQLite table
type SQLiteRepository struct {
	sqlDB         *sql.DB
	uuidGenerator uuid.Generator
	now           func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// OpenSQLite opens the database at path and creates the schema
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteRepository{
		sqlDB:         sqlDB,
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		now:           func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close closes the SQLite handle
func (s *SQLiteRepository) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *SQLiteRepository) Create(ctx context.Context, doc *character.Document) error {
	if err := validateForWrite(doc); err != nil {
		return err
	}

	now := s.now()
	data, err := toCharacterData(doc, now, now)
	if err != nil {
		return dnderr.Wrap(err, "failed to convert character data")
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO characters (id, owner_id, document, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		data.ID, data.OwnerID, []byte(data.Document), toMillis(data.CreatedAt), toMillis(data.UpdatedAt),
	)
	if isUniqueViolation(err) {
		return alreadyExists(doc.ID)
	}
	if err != nil {
		return dnderr.Wrap(err, "failed to create character")
	}

	return nil
}

func (s *SQLiteRepository) Get(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, owner_id, document, created_at, updated_at FROM characters WHERE id = ?`, id)

	data, err := scanCharacterData(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get character")
	}

	return toRecord(data, s.uuidGenerator)
}

func (s *SQLiteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Record, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, owner_id, document, created_at, updated_at FROM characters WHERE owner_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list characters")
	}
	defer rows.Close()

	records := []*Record{}
	for rows.Next() {
		data, err := scanCharacterData(rows)
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to scan character")
		}
		record, err := toRecord(data, s.uuidGenerator)
		if err != nil {
			continue
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, dnderr.Wrap(err, "failed to list characters")
	}

	return records, nil
}

func (s *SQLiteRepository) Update(ctx context.Context, doc *character.Document) error {
	if err := validateForWrite(doc); err != nil {
		return err
	}

	blob, err := character.Marshal(doc)
	if err != nil {
		return dnderr.Wrap(err, "failed to convert character data")
	}

	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE characters SET owner_id = ?, document = ?, updated_at = ? WHERE id = ?`,
		doc.OwnerID, blob, toMillis(s.now()), doc.ID,
	)
	if err != nil {
		return dnderr.Wrap(err, "failed to update character")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound(doc.ID)
	}

	return nil
}

func (s *SQLiteRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		return dnderr.Wrap(err, "failed to delete character")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound(id)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCharacterData(row rowScanner) (*CharacterData, error) {
	var (
		data               CharacterData
		blob               []byte
		createdAt, updated int64
	)
	if err := row.Scan(&data.ID, &data.OwnerID, &blob, &createdAt, &updated); err != nil {
		return nil, err
	}
	data.Document = blob
	data.CreatedAt = fromMillis(createdAt)
	data.UpdatedAt = fromMillis(updated)
	return &data, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
