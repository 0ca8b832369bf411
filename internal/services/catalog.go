package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/aggregate"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/entity"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/notify"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/repo"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/session"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/taxonomy"
)

var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvalidClassification = errors.New("invalid classification")
	ErrValidation            = errors.New("validation error")

	// ErrDuplicateSelection is the session machine's sentinel, re-exported
	// so callers do not need to import the session package to match it.
	ErrDuplicateSelection = session.ErrDuplicateSelection
)

type Catalog struct {
	log            *slog.Logger
	subjectStorage SubjectStorage
	voteStorage    VoteStorage
	logStorage     LogStorage
	scratch        ScratchStorage
	sessions       *session.Manager
	sink           notify.Sink
}

type SubjectStorage interface {
	SaveSubject(ctx context.Context, name string, creatorID int64, category string, anonymous bool) (uuid.UUID, error)
	GetSubjectByID(ctx context.Context, id uuid.UUID) (entity.Subject, error)
	GetSubjects(ctx context.Context) ([]entity.Subject, error)
	UpdateSubject(ctx context.Context, id uuid.UUID, name, category string, anonymous bool) error
	DeleteSubject(ctx context.Context, id uuid.UUID) error
}

type VoteStorage interface {
	SaveVote(ctx context.Context, voterID int64, subjectID uuid.UUID, axis, value string) error
	GetVotesByVoter(ctx context.Context, voterID int64, subjectID uuid.UUID) (map[string]string, error)
	GetVotesBySubjectAxis(ctx context.Context, subjectID uuid.UUID, axis string) ([]string, error)
	DeleteVotesBySubject(ctx context.Context, subjectID uuid.UUID) error
	DeleteVotesByVoterAxes(ctx context.Context, voterID int64, subjectID uuid.UUID, axes []string) error
	CountDistinctVoters(ctx context.Context, subjectID uuid.UUID) (int, error)
}

type LogStorage interface {
	SaveLog(ctx context.Context, log *entity.ActivityLog) (int64, error)
	GetLogs(ctx context.Context) ([]entity.ActivityLog, error)
}

type ScratchStorage interface {
	DeleteBySubject(ctx context.Context, subjectID uuid.UUID) error
}

func NewCatalog(
	log *slog.Logger,
	subjectStorage SubjectStorage,
	voteStorage VoteStorage,
	logStorage LogStorage,
	scratch ScratchStorage,
	sessions *session.Manager,
	sink notify.Sink,
) *Catalog {
	return &Catalog{
		log:            log,
		subjectStorage: subjectStorage,
		voteStorage:    voteStorage,
		logStorage:     logStorage,
		scratch:        scratch,
		sessions:       sessions,
		sink:           sink,
	}
}

func (c *Catalog) CreateSubject(ctx context.Context, creatorID int64, name, category string, anonymous bool) (uuid.UUID, error) {
	const op = "Catalog.CreateSubject"

	if creatorID <= 0 {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	if name == "" {
		return uuid.Nil, fmt.Errorf("%w: name is empty", ErrValidation)
	}

	id, err := c.subjectStorage.SaveSubject(ctx, name, creatorID, category, anonymous)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := c.writeLog(ctx, creatorID, op, &id, nil); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (c *Catalog) GetSubjectByID(ctx context.Context, id uuid.UUID) (entity.Subject, error) {
	const op = "Catalog.GetSubjectByID"

	subject, err := c.subjectStorage.GetSubjectByID(ctx, id)
	if err != nil {
		return entity.Subject{}, fmt.Errorf("%s: %w", op, err)
	}

	return subject, nil
}

func (c *Catalog) GetSubjects(ctx context.Context) ([]entity.Subject, error) {
	const op = "Catalog.GetSubjects"

	subjects, err := c.subjectStorage.GetSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return subjects, nil
}

// UpdateSubject is an owner-only operation: only the creator may change
// a subject.
func (c *Catalog) UpdateSubject(ctx context.Context, id uuid.UUID, name, category string, anonymous bool, userID int64) error {
	const op = "Catalog.UpdateSubject"

	subject, err := c.subjectStorage.GetSubjectByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if subject.CreatorID != userID {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrValidation)
	}

	if err := c.subjectStorage.UpdateSubject(ctx, id, name, category, anonymous); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return c.writeLog(ctx, userID, op, &id, nil)
}

// DeleteSubject removes the subject together with its votes and every
// voter's scratch session for it.
func (c *Catalog) DeleteSubject(ctx context.Context, id uuid.UUID, userID int64) error {
	const op = "Catalog.DeleteSubject"

	subject, err := c.subjectStorage.GetSubjectByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if subject.CreatorID != userID {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	// The subject row goes first: the schema's ON DELETE CASCADE covers
	// the votes, so a storage failure here leaves everything intact
	// instead of a live subject with its votes already gone.
	if err := c.subjectStorage.DeleteSubject(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.voteStorage.DeleteVotesBySubject(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.scratch.DeleteBySubject(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return c.writeLog(ctx, userID, op, &id, nil)
}

// CastVote validates and upserts one classification. All validation runs
// before any write; a repeated cast on the same axis overwrites the
// earlier vote.
func (c *Catalog) CastVote(ctx context.Context, voterID int64, subjectID uuid.UUID, axis, value string) error {
	const op = "Catalog.CastVote"

	if voterID <= 0 {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	canonical, ok := taxonomy.Canonical(axis, value)
	if !ok {
		return fmt.Errorf("%s: %q on %s: %w", op, value, axis, ErrInvalidClassification)
	}

	subject, err := c.subjectStorage.GetSubjectByID(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.voteStorage.SaveVote(ctx, voterID, subjectID, axis, canonical); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.log.Debug("vote cast",
		slog.String("op", op),
		slog.Int64("voter_id", voterID),
		slog.String("subject_id", subjectID.String()),
		slog.String("axis", axis),
	)

	if err := c.writeLog(ctx, voterID, op, &subjectID, &axis); err != nil {
		return err
	}

	if subject.CreatorID != voterID {
		c.sink.Publish(ctx, notify.Event{
			Kind:      notify.KindVoteCast,
			ActorID:   voterID,
			OwnerID:   subject.CreatorID,
			SubjectID: subjectID,
			Axis:      axis,
			Value:     canonical,
		})
	}

	return nil
}

func (c *Catalog) VotesByVoter(ctx context.Context, voterID int64, subjectID uuid.UUID) (map[string]string, error) {
	const op = "Catalog.VotesByVoter"

	if voterID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	votes, err := c.voteStorage.GetVotesByVoter(ctx, voterID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return votes, nil
}

// Aggregate recomputes the breakdown for one subject and axis from the
// current vote set. An axis with no votes yields an empty result; an
// unknown subject is an error, never an empty breakdown.
func (c *Catalog) Aggregate(ctx context.Context, subjectID uuid.UUID, axis string) ([]entity.AggregateEntry, error) {
	const op = "Catalog.Aggregate"

	if _, err := taxonomy.Values(axis); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidClassification)
	}

	if _, err := c.subjectStorage.GetSubjectByID(ctx, subjectID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	values, err := c.voteStorage.GetVotesBySubjectAxis(ctx, subjectID, axis)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return aggregate.Compute(values), nil
}

func (c *Catalog) MostVoted(ctx context.Context, subjectID uuid.UUID, axis string) (string, bool, error) {
	const op = "Catalog.MostVoted"

	entries, err := c.Aggregate(ctx, subjectID, axis)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	if len(entries) == 0 {
		return "", false, nil
	}

	return entries[0].Value, true, nil
}

// UniqueVoterCount is a trust signal: how many distinct voters touched
// any axis of the subject. It never weights votes.
func (c *Catalog) UniqueVoterCount(ctx context.Context, subjectID uuid.UUID) (int, error) {
	const op = "Catalog.UniqueVoterCount"

	if _, err := c.subjectStorage.GetSubjectByID(ctx, subjectID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	count, err := c.voteStorage.CountDistinctVoters(ctx, subjectID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// ListSubjectsByRegion filters subjects whose most-voted primary
// geographic classification derives to regionKey; subjects without
// geographic votes fall back to the primary phenotype axis, which
// derives by substring. Recomputed on every call.
func (c *Catalog) ListSubjectsByRegion(ctx context.Context, regionKey string) ([]entity.Subject, error) {
	const op = "Catalog.ListSubjectsByRegion"

	subjects, err := c.subjectStorage.GetSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var matched []entity.Subject
	for _, subject := range subjects {
		key, ok, err := c.deriveRegion(ctx, subject.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if ok && key == regionKey {
			matched = append(matched, subject)
		}
	}

	return matched, nil
}

func (c *Catalog) deriveRegion(ctx context.Context, subjectID uuid.UUID) (string, bool, error) {
	value, ok, err := c.MostVoted(ctx, subjectID, taxonomy.AxisPrimaryGeographic)
	if err != nil {
		return "", false, err
	}
	if ok {
		key, found := taxonomy.DeriveGeographicRegion(value)
		return key, found, nil
	}

	value, ok, err = c.MostVoted(ctx, subjectID, taxonomy.AxisPrimaryPhenotype)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	key, found := taxonomy.DerivePhenotypeRegion(value)
	return key, found, nil
}

func (c *Catalog) GetLogs(ctx context.Context) ([]entity.ActivityLog, error) {
	const op = "Catalog.GetLogs"

	logs, err := c.logStorage.GetLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return logs, nil
}

func (c *Catalog) writeLog(ctx context.Context, actorID int64, action string, subjectID *uuid.UUID, axis *string) error {
	log := &entity.ActivityLog{
		ActorID:   actorID,
		Action:    action,
		SubjectID: subjectID,
		Axis:      axis,
	}
	if _, err := c.logStorage.SaveLog(ctx, log); err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	return nil
}

// IsSubjectNotFound lets handlers map the storage sentinel without
// importing the repo package all over.
func IsSubjectNotFound(err error) bool {
	return errors.Is(err, repo.ErrSubjectNotFound)
}
