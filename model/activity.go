package model

import "time"

// Activity is an append-only audit record. Rows are never updated
// or deleted.
type Activity struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint    `gorm:"not null;index" json:"userId"`
	Action     string  `gorm:"not null" json:"action"`
	EntityType string  `gorm:"not null" json:"entityType"`
	EntityID   *uint   `json:"entityId,omitempty"`
	Details    JSONMap `json:"details,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
