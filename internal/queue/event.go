// Package queue defines message payloads exchanged over the message broker.
package queue

// RockCreatedEvent is published when a specimen record is created. It carries
// enough context for downstream consumers (notifications, analytics) to act
// without querying the primary database.
type RockCreatedEvent struct {
	RockID    uint64 `json:"rock_id"`
	UserID    uint64 `json:"user_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	ImageURL  string `json:"image_url,omitempty"`
	CreatedAt string `json:"created_at"`
}

// RockDeletedEvent is published when an owner removes one of their specimens.
type RockDeletedEvent struct {
	RockID    uint64 `json:"rock_id"`
	UserID    uint64 `json:"user_id"`
	DeletedAt string `json:"deleted_at"`
}
