package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/session"
)

// Session levels as submitted by the presentation layer.
const (
	LevelPrimary   = 0
	LevelSecondary = 1
	LevelTertiary  = 2
)

// SessionView is the presentation snapshot of one voting session.
type SessionView struct {
	Family      string            `json:"family"`
	State       session.State     `json:"state"`
	Selections  map[string]string `json:"selections"`
	Committable bool              `json:"committable"`
}

// GetSession resumes a voter's session for one hierarchy family:
// committed votes as baseline, scratch edits on top.
func (c *Catalog) GetSession(ctx context.Context, voterID int64, subjectID uuid.UUID, family string) (SessionView, error) {
	const op = "Catalog.GetSession"

	if voterID <= 0 {
		return SessionView{}, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	machine, err := c.sessions.Resume(ctx, voterID, subjectID, family)
	if err != nil {
		return SessionView{}, fmt.Errorf("%s: %w", op, err)
	}

	return viewOf(family, machine), nil
}

// SetSessionSelection applies one transition (primary/secondary/tertiary)
// and persists the edit as scratch state only.
func (c *Catalog) SetSessionSelection(ctx context.Context, voterID int64, subjectID uuid.UUID, family string, level int, value string) (SessionView, error) {
	const op = "Catalog.SetSessionSelection"

	if voterID <= 0 {
		return SessionView{}, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	machine, err := c.sessions.Set(ctx, voterID, subjectID, family, level, value)
	if err != nil {
		return SessionView{}, fmt.Errorf("%s: %w", op, err)
	}

	return viewOf(family, machine), nil
}

// CommitSession casts one vote per populated axis and clears stale child
// votes left over from an earlier commit of the same hierarchy.
func (c *Catalog) CommitSession(ctx context.Context, voterID int64, subjectID uuid.UUID, family string) error {
	const op = "Catalog.CommitSession"

	if voterID <= 0 {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	cast := func(ctx context.Context, axisName, value string) error {
		return c.CastVote(ctx, voterID, subjectID, axisName, value)
	}
	clear := func(ctx context.Context, axes []string) error {
		return c.voteStorage.DeleteVotesByVoterAxes(ctx, voterID, subjectID, axes)
	}

	if err := c.sessions.Commit(ctx, voterID, subjectID, family, cast, clear); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DiscardSession drops the scratch edit; committed votes are untouched.
func (c *Catalog) DiscardSession(ctx context.Context, voterID int64, subjectID uuid.UUID, family string) error {
	const op = "Catalog.DiscardSession"

	if voterID <= 0 {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if err := c.sessions.Discard(ctx, voterID, subjectID, family); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func viewOf(family string, machine *session.Machine) SessionView {
	return SessionView{
		Family:      family,
		State:       machine.State(),
		Selections:  machine.Selections(),
		Committable: machine.Committable(),
	}
}
