package model

import "time"

// DefaultImageURL is stored when a campus or student is written without an image.
const DefaultImageURL = "default-image.jpg"

// Campus represents a campus record.
type Campus struct {
	ID          int       `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Address     string    `json:"address" validate:"required"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CampusWithStudents is a campus with its students eagerly loaded.
// Students is never nil so it always encodes as a JSON array.
type CampusWithStudents struct {
	Campus
	Students []Student `json:"students"`
}

// CreateCampusRequest is the payload for creating a campus.
type CreateCampusRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// UpdateCampusRequest is the payload for updating a campus. A nil or empty
// field leaves the stored value unchanged.
type UpdateCampusRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}
