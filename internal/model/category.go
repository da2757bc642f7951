package model

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. Deleting a category never deletes its products;
// their category link is nulled inside the same transaction.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
