package models

import (
	"time"

	"github.com/google/uuid"
)

// Data represents one "teman" record owned by a user.
type Data struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OwnerID     uuid.UUID `json:"ownerId" db:"owner_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Address     string    `json:"address" db:"address"`
	PhotoLink   string    `json:"photoLink" db:"photo_link"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateDataRequest represents a request to create a data record
type CreateDataRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	PhotoLink   string `json:"photoLink"`
}

// UpdateDataRequest represents a partial update of a data record
type UpdateDataRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	PhotoLink   *string `json:"photoLink,omitempty"`
}
