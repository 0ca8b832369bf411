package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store persists uncommitted session selections in a local sqlite file,
// keyed (voter, subject, family). It is scratch state only: losing it
// costs an in-progress edit, never a committed vote.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	const op = "session.NewStore"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	schema := `CREATE TABLE IF NOT EXISTS scratch_sessions (
		voter_id   INTEGER NOT NULL,
		subject_id TEXT    NOT NULL,
		family     TEXT    NOT NULL,
		selections TEXT    NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (voter_id, subject_id, family)
	)`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Save(ctx context.Context, voterID int64, subjectID uuid.UUID, family string, selections map[string]string) error {
	const op = "session.Store.Save"

	payload, err := json.Marshal(selections)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO scratch_sessions (voter_id, subject_id, family, selections, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		ON CONFLICT (voter_id, subject_id, family)
		DO UPDATE SET selections = excluded.selections, updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, voterID, subjectID.String(), family, string(payload)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Load returns the stored selections, or an empty map when no scratch
// session exists.
func (s *Store) Load(ctx context.Context, voterID int64, subjectID uuid.UUID, family string) (map[string]string, error) {
	const op = "session.Store.Load"

	query := `SELECT selections FROM scratch_sessions WHERE voter_id = $1 AND subject_id = $2 AND family = $3`

	var payload string
	err := s.db.QueryRowContext(ctx, query, voterID, subjectID.String(), family).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	selections := make(map[string]string)
	if err := json.Unmarshal([]byte(payload), &selections); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return selections, nil
}

func (s *Store) Delete(ctx context.Context, voterID int64, subjectID uuid.UUID, family string) error {
	const op = "session.Store.Delete"

	query := `DELETE FROM scratch_sessions WHERE voter_id = $1 AND subject_id = $2 AND family = $3`

	if _, err := s.db.ExecContext(ctx, query, voterID, subjectID.String(), family); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteBySubject drops every voter's scratch state for a subject; used
// when the subject itself is removed.
func (s *Store) DeleteBySubject(ctx context.Context, subjectID uuid.UUID) error {
	const op = "session.Store.DeleteBySubject"

	query := `DELETE FROM scratch_sessions WHERE subject_id = $1`

	if _, err := s.db.ExecContext(ctx, query, subjectID.String()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
