// Package notify is the boundary to the notification collaborator.
// The engine only emits events; delivery and ordering belong to the sink.
package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

const KindVoteCast = "vote_cast"

type Event struct {
	Kind      string
	ActorID   int64
	OwnerID   int64
	SubjectID uuid.UUID
	Axis      string
	Value     string
}

// Sink receives fire-and-forget events. Implementations must not block
// the vote path.
type Sink interface {
	Publish(ctx context.Context, event Event)
}

// SlogSink logs events instead of delivering them; the default sink for
// local runs and tests.
type SlogSink struct {
	log *slog.Logger
}

func NewSlogSink(log *slog.Logger) *SlogSink {
	return &SlogSink{log: log}
}

func (s *SlogSink) Publish(_ context.Context, event Event) {
	s.log.Info("notification",
		slog.String("kind", event.Kind),
		slog.Int64("actor_id", event.ActorID),
		slog.Int64("owner_id", event.OwnerID),
		slog.String("subject_id", event.SubjectID.String()),
		slog.String("axis", event.Axis),
	)
}
