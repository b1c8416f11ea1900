// Package model defines database models
package model

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	// Argon2id hash, or a random placeholder for accounts created
	// through the external identity bridge
	PasswordHash string `gorm:"not null" json:"-"`
	DisplayName  string `json:"displayName,omitempty"`
	AvatarURL    string `json:"avatarUrl,omitempty"`

	// Nullable so the unique index only applies once a customer exists.
	// Webhooks resolve users through this column instead of scanning.
	StripeCustomerID      *string    `gorm:"uniqueIndex" json:"stripeCustomerId,omitempty"`
	StripeSubscriptionID  string     `json:"stripeSubscriptionId,omitempty"`
	SubscriptionStatus    string     `gorm:"default:free" json:"subscriptionStatus"`
	SubscriptionTier      string     `gorm:"default:free" json:"subscriptionTier"`
	SubscriptionExpiresAt *time.Time `json:"subscriptionExpiresAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Vaults     []Vault     `gorm:"foreignKey:UserID" json:"-"`
	Recipients []Recipient `gorm:"foreignKey:UserID" json:"-"`
}
