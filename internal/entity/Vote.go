package entity

import (
	"time"

	"github.com/google/uuid"
)

type Vote struct {
	VoterID   int64
	SubjectID uuid.UUID
	Axis      string
	Value     string
	VotedAt   time.Time
}
