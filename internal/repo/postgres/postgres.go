package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/entity"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/repo"
)

type Storage struct {
	db *sql.DB
}

func New(postgresURL string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) SaveSubject(ctx context.Context, name string, creatorID int64, category string, anonymous bool) (uuid.UUID, error) {
	const op = "storage.postgres.SaveSubject"

	query := `INSERT INTO subjects (id, name, creator_id, category, anonymous) VALUES ($1, $2, $3, $4, $5) RETURNING id`

	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, query, uuid.New(), name, creatorID, category, anonymous).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetSubjectByID(ctx context.Context, id uuid.UUID) (entity.Subject, error) {
	const op = "storage.postgres.GetSubjectByID"

	query := `SELECT id, name, creator_id, category, anonymous, created_at, updated_at FROM subjects WHERE id = $1`

	var subject entity.Subject
	err := s.db.QueryRowContext(ctx, query, id).Scan(&subject.ID, &subject.Name, &subject.CreatorID, &subject.Category, &subject.Anonymous, &subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Subject{}, fmt.Errorf("%s: %w", op, repo.ErrSubjectNotFound)
		}
		return entity.Subject{}, fmt.Errorf("%s: %w", op, err)
	}

	return subject, nil
}

func (s *Storage) GetSubjects(ctx context.Context) ([]entity.Subject, error) {
	const op = "storage.postgres.GetSubjects"

	query := `SELECT id, name, creator_id, category, anonymous, created_at, updated_at FROM subjects ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var subjects []entity.Subject
	for rows.Next() {
		var subject entity.Subject
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.CreatorID, &subject.Category, &subject.Anonymous, &subject.CreatedAt, &subject.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return subjects, nil
}

func (s *Storage) UpdateSubject(ctx context.Context, id uuid.UUID, name, category string, anonymous bool) error {
	const op = "storage.postgres.UpdateSubject"

	const query = `UPDATE subjects SET name = $1, category = $2, anonymous = $3, updated_at = NOW() WHERE id = $4`

	res, err := s.db.ExecContext(ctx, query, name, category, anonymous, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, repo.ErrSubjectNotFound)
	}
	return nil
}

func (s *Storage) DeleteSubject(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteSubject"

	query := `DELETE FROM subjects WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrSubjectNotFound
	}

	return nil
}

// SaveVote upserts on the (voter_id, subject_id, axis) key, so a repeat
// cast by the same voter overwrites the earlier row instead of adding one.
func (s *Storage) SaveVote(ctx context.Context, voterID int64, subjectID uuid.UUID, axis, value string) error {
	const op = "storage.postgres.SaveVote"

	query := `INSERT INTO votes (voter_id, subject_id, axis, value, voted_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (voter_id, subject_id, axis)
		DO UPDATE SET value = EXCLUDED.value, voted_at = NOW()`

	if _, err := s.db.ExecContext(ctx, query, voterID, subjectID, axis, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetVotesByVoter(ctx context.Context, voterID int64, subjectID uuid.UUID) (map[string]string, error) {
	const op = "storage.postgres.GetVotesByVoter"

	query := `SELECT axis, value FROM votes WHERE voter_id = $1 AND subject_id = $2`

	rows, err := s.db.QueryContext(ctx, query, voterID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	votes := make(map[string]string)
	for rows.Next() {
		var axis, value string
		if err := rows.Scan(&axis, &value); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		votes[axis] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return votes, nil
}

// GetVotesBySubjectAxis returns values ordered by cast time ascending.
// Aggregation relies on this order for its first-cast-wins tie-break.
func (s *Storage) GetVotesBySubjectAxis(ctx context.Context, subjectID uuid.UUID, axis string) ([]string, error) {
	const op = "storage.postgres.GetVotesBySubjectAxis"

	query := `SELECT value FROM votes WHERE subject_id = $1 AND axis = $2 ORDER BY voted_at ASC, value ASC`

	rows, err := s.db.QueryContext(ctx, query, subjectID, axis)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return values, nil
}

func (s *Storage) DeleteVotesBySubject(ctx context.Context, subjectID uuid.UUID) error {
	const op = "storage.postgres.DeleteVotesBySubject"

	query := `DELETE FROM votes WHERE subject_id = $1`

	if _, err := s.db.ExecContext(ctx, query, subjectID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteVotesByVoterAxes(ctx context.Context, voterID int64, subjectID uuid.UUID, axes []string) error {
	const op = "storage.postgres.DeleteVotesByVoterAxes"

	query := `DELETE FROM votes WHERE voter_id = $1 AND subject_id = $2 AND axis = ANY($3)`

	if _, err := s.db.ExecContext(ctx, query, voterID, subjectID, pq.Array(axes)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) CountDistinctVoters(ctx context.Context, subjectID uuid.UUID) (int, error) {
	const op = "storage.postgres.CountDistinctVoters"

	query := `SELECT COUNT(DISTINCT voter_id) FROM votes WHERE subject_id = $1`

	var count int
	if err := s.db.QueryRowContext(ctx, query, subjectID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (s *Storage) SaveLog(ctx context.Context, log *entity.ActivityLog) (int64, error) {
	const op = "storage.postgres.SaveLog"

	query := `INSERT INTO activity_log (actor_id, action, subject_id, axis) VALUES ($1, $2, $3, $4) RETURNING id`

	err := s.db.QueryRowContext(ctx, query, log.ActorID, log.Action, log.SubjectID, log.Axis).Scan(&log.ID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return log.ID, nil
}

func (s *Storage) GetLogs(ctx context.Context) ([]entity.ActivityLog, error) {
	const op = "storage.postgres.GetLogs"

	query := `SELECT id, actor_id, action, subject_id, axis, created_at FROM activity_log ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var logs []entity.ActivityLog
	for rows.Next() {
		var log entity.ActivityLog
		if err := rows.Scan(&log.ID, &log.ActorID, &log.Action, &log.SubjectID, &log.Axis, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return logs, nil
}
