package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID *uuid.UUID `gorm:"type:uuid;index" json:"booking_id"`

	Amount   float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	Currency string  `gorm:"size:3" json:"currency"`

	// paypal or free
	Provider        string  `gorm:"size:20" json:"provider"`
	ProviderOrderID *string `gorm:"size:255" json:"provider_order_id"`

	// pending, succeeded, failed
	Status     string  `gorm:"size:20;not null;default:'pending'" json:"status"`
	ReceiptURL *string `gorm:"size:255" json:"receipt_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
