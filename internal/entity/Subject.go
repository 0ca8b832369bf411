package entity

import (
	"time"

	"github.com/google/uuid"
)

type Subject struct {
	ID        uuid.UUID
	Name      string
	CreatorID int64
	Category  string
	Anonymous bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
