// Package sqlite provides a SQLite implementation of the SnapshotStore
// interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charnet/charnet/internal/domain/entities"
	"github.com/charnet/charnet/internal/infrastructure/config"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Store implements ports.SnapshotStore using SQLite.
type Store struct {
	db      *sql.DB
	path    string
	workdir string // holds the working copy when loaded from bytes
}

// Open opens a snapshot file directly. Used by init and by sessions that
// manage their own working copy.
func Open(cfg config.SnapshotConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("snapshot path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot database: %w", err)
	}

	// Enforce referential integrity between relationships and characters
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Store{
		db:   db,
		path: cfg.Path,
	}, nil
}

// LoadBytes materializes a serialized snapshot into a private working copy
// and opens it. The canonical snapshot is never opened for writing; all
// durability goes through Export. Fails with ErrCorruptSnapshot if the bytes
// are not a valid snapshot image.
func LoadBytes(data []byte) (*Store, error) {
	workdir, err := os.MkdirTemp("", "charnet-snapshot-")
	if err != nil {
		return nil, fmt.Errorf("creating working directory: %w", err)
	}

	path := filepath.Join(workdir, "working.sqlite")
	if err := os.WriteFile(path, data, 0600); err != nil {
		os.RemoveAll(workdir)
		return nil, fmt.Errorf("writing working copy: %w", err)
	}

	store, err := Open(config.SnapshotConfig{Path: path})
	if err != nil {
		os.RemoveAll(workdir)
		return nil, err
	}
	store.workdir = workdir

	if err := store.validate(context.Background()); err != nil {
		store.Close()
		return nil, err
	}

	return store, nil
}

// validate checks that the opened file is a healthy snapshot image with the
// expected row-sets.
func (s *Store) validate(ctx context.Context) error {
	var result string
	if err := s.db.QueryRowContext(ctx, "PRAGMA integrity_check").Scan(&result); err != nil {
		return fmt.Errorf("%w: %v", entities.ErrCorruptSnapshot, err)
	}
	if result != "ok" {
		return fmt.Errorf("%w: integrity check failed: %s", entities.ErrCorruptSnapshot, result)
	}

	for _, table := range []string{"characters", "relationships"} {
		var count int
		err := s.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&count)
		if err != nil {
			return fmt.Errorf("%w: %v", entities.ErrCorruptSnapshot, err)
		}
		if count == 0 {
			return fmt.Errorf("%w: missing table %s", entities.ErrCorruptSnapshot, table)
		}
	}
	return nil
}

// Close closes the database connection and removes the working copy, if any.
func (s *Store) Close() error {
	err := s.db.Close()
	if s.workdir != "" {
		if rerr := os.RemoveAll(s.workdir); rerr != nil && err == nil {
			err = rerr
		}
	}
	return err
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// EnsureSchema creates the snapshot schema if it doesn't exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Characters (soft-deleted rows keep is_active = 0, never removed)
	CREATE TABLE IF NOT EXISTS characters (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '#ffd700',
		"group" TEXT NOT NULL DEFAULT '',
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_characters_active ON characters(is_active);

	-- Relationships (directed; one row per ordered source/target pair)
	CREATE TABLE IF NOT EXISTS relationships (
		id TEXT PRIMARY KEY,
		source_id TEXT NOT NULL,
		target_id TEXT NOT NULL,
		type TEXT NOT NULL,
		strength INTEGER NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(source_id, target_id)
	);
	CREATE INDEX IF NOT EXISTS idx_relationships_source ON relationships(source_id);
	CREATE INDEX IF NOT EXISTS idx_relationships_target ON relationships(target_id);

	-- Audit log (tracks all mutations)
	CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		action TEXT NOT NULL,
		subject_id TEXT,
		details TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_audit_log_action ON audit_log(action);
	`

	_, err := s.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// ListActiveCharacters returns all active characters in store-native order.
func (s *Store) ListActiveCharacters(ctx context.Context) ([]entities.Character, error) {
	query := `
		SELECT id, name, color, "group", is_active, created_at
		FROM characters
		WHERE is_active = 1
	`
	return s.queryCharacters(ctx, query)
}

// ListCharactersExcluding returns all active characters except the given id.
func (s *Store) ListCharactersExcluding(ctx context.Context, id string) ([]entities.Character, error) {
	query := `
		SELECT id, name, color, "group", is_active, created_at
		FROM characters
		WHERE is_active = 1 AND id != ?
	`
	return s.queryCharacters(ctx, query, id)
}

// queryCharacters is a helper to execute character queries.
func (s *Store) queryCharacters(ctx context.Context, query string, args ...any) ([]entities.Character, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying characters: %w", err)
	}
	defer rows.Close()

	characters := make([]entities.Character, 0, 16)
	for rows.Next() {
		var c entities.Character
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Color,
			&c.Group,
			&c.Active,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning character: %w", err)
		}
		characters = append(characters, c)
	}
	return characters, rows.Err()
}

// InsertCharacter adds a new character. Duplicate ids are rejected whether
// the existing row is active or not.
func (s *Store) InsertCharacter(ctx context.Context, character *entities.Character) error {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM characters WHERE id = ?`, character.ID).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking character id: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("inserting character %q: %w", character.ID, entities.ErrDuplicateID)
	}

	if character.CreatedAt.IsZero() {
		character.CreatedAt = timeNow()
	}
	character.Active = true

	query := `
		INSERT INTO characters (id, name, color, "group", is_active, created_at)
		VALUES (?, ?, ?, ?, 1, ?)
	`
	_, err = s.db.ExecContext(ctx, query,
		character.ID,
		character.Name,
		character.Color,
		character.Group,
		character.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting character: %w", err)
	}

	return s.logAction(ctx, "insert_character", character.ID, map[string]any{
		"name":  character.Name,
		"color": character.Color,
	})
}

// SetCharacterActive soft-deletes or restores a character. Relationships are
// left untouched; they simply drop out of the projected view.
func (s *Store) SetCharacterActive(ctx context.Context, id string, active bool) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE characters SET is_active = ? WHERE id = ?`, active, id)
	if err != nil {
		return fmt.Errorf("updating character: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("character not found: %s", id)
	}

	return s.logAction(ctx, "set_character_active", id, map[string]any{
		"active": active,
	})
}

// ListRelationships returns all relationships, independent of endpoint
// activity.
func (s *Store) ListRelationships(ctx context.Context) ([]entities.Relationship, error) {
	query := `
		SELECT id, source_id, target_id, type, strength, notes, created_at
		FROM relationships
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying relationships: %w", err)
	}
	defer rows.Close()

	relationships := make([]entities.Relationship, 0, 16)
	for rows.Next() {
		var rel entities.Relationship
		var relType string
		if err := rows.Scan(
			&rel.ID,
			&rel.SourceID,
			&rel.TargetID,
			&relType,
			&rel.Strength,
			&rel.Notes,
			&rel.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning relationship: %w", err)
		}
		rel.Type = entities.RelationType(relType)
		relationships = append(relationships, rel)
	}
	return relationships, rows.Err()
}

// UpsertRelationship writes a relationship keyed by the ordered
// (source, target) pair. A prior row for the same pair is replaced in place,
// keeping its surrogate id.
func (s *Store) UpsertRelationship(ctx context.Context, sourceID, targetID string, relType entities.RelationType, notes string) (*entities.Relationship, error) {
	if !relType.Valid() {
		return nil, fmt.Errorf("upserting relationship %s -> %s: %w: %q", sourceID, targetID, entities.ErrUnknownType, relType)
	}

	query := `
		INSERT INTO relationships (id, source_id, target_id, type, strength, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_id, target_id) DO UPDATE SET
			type = excluded.type,
			strength = excluded.strength,
			notes = excluded.notes
	`
	_, err := s.db.ExecContext(ctx, query,
		generateUUID(),
		sourceID,
		targetID,
		string(relType),
		relType.Strength(),
		notes,
		timeNow(),
	)
	if err != nil {
		return nil, fmt.Errorf("upserting relationship: %w", err)
	}

	rel, err := s.findRelationship(ctx, sourceID, targetID)
	if err != nil {
		return nil, err
	}

	if err := s.logAction(ctx, "upsert_relationship", rel.ID, map[string]any{
		"source": sourceID,
		"target": targetID,
		"type":   string(relType),
	}); err != nil {
		return nil, err
	}

	return rel, nil
}

// findRelationship fetches the row for an ordered pair.
func (s *Store) findRelationship(ctx context.Context, sourceID, targetID string) (*entities.Relationship, error) {
	query := `
		SELECT id, source_id, target_id, type, strength, notes, created_at
		FROM relationships
		WHERE source_id = ? AND target_id = ?
	`
	row := s.db.QueryRowContext(ctx, query, sourceID, targetID)

	var rel entities.Relationship
	var relType string
	err := row.Scan(
		&rel.ID,
		&rel.SourceID,
		&rel.TargetID,
		&relType,
		&rel.Strength,
		&rel.Notes,
		&rel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning relationship: %w", err)
	}
	rel.Type = entities.RelationType(relType)
	return &rel, nil
}

// Export serializes the full current relational image, independent of what
// has or has not been rendered.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	dir, err := os.MkdirTemp("", "charnet-export-")
	if err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}
	defer os.RemoveAll(dir)

	// VACUUM INTO produces a compact single-file image of the live database.
	target := filepath.Join(dir, "snapshot.sqlite")
	if _, err := s.db.ExecContext(ctx, `VACUUM INTO ?`, target); err != nil {
		return nil, fmt.Errorf("serializing snapshot: %w", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("reading serialized snapshot: %w", err)
	}
	return data, nil
}

// logAction logs a mutation to the audit log.
func (s *Store) logAction(ctx context.Context, action string, subjectID string, details map[string]any) error {
	var detailsJSON sql.NullString
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("marshaling details: %w", err)
		}
		detailsJSON = sql.NullString{String: string(data), Valid: true}
	}

	var subject sql.NullString
	if subjectID != "" {
		subject = sql.NullString{String: subjectID, Valid: true}
	}

	query := `INSERT INTO audit_log (action, subject_id, details) VALUES (?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, action, subject, detailsJSON); err != nil {
		return fmt.Errorf("logging action: %w", err)
	}
	return nil
}

// ListAuditLog returns the most recent audit entries, newest first.
func (s *Store) ListAuditLog(ctx context.Context, limit int) ([]entities.AuditEntry, error) {
	query := `
		SELECT id, action, subject_id, details, created_at
		FROM audit_log
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.AuditEntry, 0, limit)
	for rows.Next() {
		var entry entities.AuditEntry
		var subjectID, details sql.NullString

		if err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&subjectID,
			&details,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}

		entry.SubjectID = subjectID.String

		if details.Valid && details.String != "" {
			if err := json.Unmarshal([]byte(details.String), &entry.Details); err != nil {
				return nil, fmt.Errorf("unmarshaling details: %w", err)
			}
		}

		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
