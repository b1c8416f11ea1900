package model

import "time"

// Valid values for ContentItem.ContentType
var ContentTypes = []string{"image", "video", "document", "message", "other"}

type ContentItem struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`
	ContentType string `gorm:"not null" json:"contentType"`

	// Object key in the blob store, or the literal text for messages
	ContentPath string `gorm:"not null" json:"contentPath"`

	VaultID uint `gorm:"not null;index" json:"vaultId"`
	UserID  uint `gorm:"not null;index" json:"userId"`

	// Generated server-side at create time when the client doesn't
	// supply one. Stored beside the row; key management beyond that
	// is out of scope.
	EncryptionKey string  `json:"encryptionKey,omitempty"`
	ThumbnailURL  string  `json:"thumbnailUrl,omitempty"`
	Metadata      JSONMap `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Deliveries []Delivery `gorm:"foreignKey:ContentItemID" json:"-"`
}
