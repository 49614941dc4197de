package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	ClassID    uuid.UUID `gorm:"type:uuid;not null;index" json:"class_id"`

	// pending_payment, confirmed, cancelled, completed, unattended
	Status   string  `gorm:"size:20;not null;default:'pending_payment'" json:"status"`
	Price    float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	Currency string  `gorm:"size:3" json:"currency"`

	Customer User  `gorm:"foreignkey:CustomerID" json:"customer,omitempty"`
	Class    Class `gorm:"foreignkey:ClassID" json:"class,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
