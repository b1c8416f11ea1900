package model

import "time"

const (
	TriggerScheduled   = "scheduled"
	TriggerConditional = "conditional"
)

// Valid values for Delivery.DeliveryMethod
var DeliveryMethods = []string{"email", "sms", "both"}

// Delivery pairs one content item with one recipient. The trigger is a
// tagged variant: a scheduled delivery carries ScheduledDate, a
// conditional one carries TriggerCondition, never both. Nothing in this
// system evaluates either - IsDelivered only changes through the
// generic update path.
type Delivery struct {
	ID            uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentItemID uint `gorm:"not null;index" json:"contentItemId"`
	RecipientID   uint `gorm:"not null;index" json:"recipientId"`
	UserID        uint `gorm:"not null;index" json:"userId"`

	TriggerType      string     `gorm:"not null" json:"triggerType"`
	ScheduledDate    *time.Time `json:"scheduledDate,omitempty"`
	TriggerCondition string     `json:"triggerCondition,omitempty"`

	IsDelivered bool       `gorm:"default:false" json:"isDelivered"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`

	DeliveryMethod  string `gorm:"default:email" json:"deliveryMethod"`
	AdditionalNotes string `json:"additionalNotes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
