package model

import "time"

// SubscriptionTier maps a purchasable tier to its Stripe price. Seeded
// at migration time, read-mostly afterwards.
type SubscriptionTier struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"unique;not null" json:"name"`
	Description string `gorm:"not null" json:"description"`

	// Price in cents, e.g. $9.99 = 999
	Price    int    `gorm:"not null" json:"price"`
	Interval string `gorm:"not null;default:month" json:"interval"`

	Features      JSONMap `json:"features"`
	StripePriceID string  `gorm:"not null" json:"stripePriceId"`
	IsActive      bool    `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
