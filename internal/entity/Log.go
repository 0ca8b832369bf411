package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	ID        int64
	ActorID   int64
	Action    string
	SubjectID *uuid.UUID
	Axis      *string
	CreatedAt time.Time
}
