package model

import "time"

type Vault struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`
	CoverImage  string `json:"coverImage,omitempty"`
	UserID      uint   `gorm:"not null;index" json:"userId"`

	// Free-text tier label shown to the user, not enforced anywhere
	EncryptionLevel string `gorm:"not null" json:"encryptionLevel"`
	IsActive        bool   `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ContentItems []ContentItem `gorm:"foreignKey:VaultID" json:"-"`
}
