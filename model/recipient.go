package model

import "time"

type Recipient struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"not null" json:"email"`
	Phone      string `json:"phone,omitempty"`
	UserID     uint   `gorm:"not null;index" json:"userId"`
	IsVerified bool   `gorm:"default:false" json:"isVerified"`

	NotificationPreferences JSONMap `json:"notificationPreferences,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Deliveries []Delivery `gorm:"foreignKey:RecipientID" json:"-"`
}
