package model

import "time"

// Rock represents a specimen record in the `rocks` table. Every rock belongs
// to exactly one user and is only ever visible through owner-scoped queries.
// Properties is a free-form attribute map and Colors a list of color names;
// both are stored as JSON columns. ImageURL, when set, points at the
// upload-serving route for the stored image file.
//
// The JSON tags follow the client contract: camelCase except common_uses,
// which the original API exposed with an underscore.
type Rock struct {
	ID              uint64         `json:"id"`
	UserID          uint64         `json:"userId"`
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Description     string         `json:"description"`
	Properties      map[string]any `json:"properties"`
	Colors          []string       `json:"colors"`
	ImageURL        string         `json:"imageUrl,omitempty"`
	CommonUses      string         `json:"common_uses,omitempty"`
	ImageQuality    string         `json:"imageQuality,omitempty"`
	ConfidenceLevel string         `json:"confidenceLevel,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}
