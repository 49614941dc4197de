package models

import (
	"time"

	"github.com/google/uuid"
)

type Class struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudioID uuid.UUID `gorm:"type:uuid;not null;index" json:"studio_id"`

	// Assigned instructor; requires an active marketplace link with the studio.
	InstructorID *uuid.UUID `gorm:"type:uuid;index" json:"instructor_id"`

	Title       string  `gorm:"size:255;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`

	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Capacity    int     `gorm:"not null;default:1" json:"capacity"`
	BookedCount int     `gorm:"not null;default:0" json:"booked_count"`
	Price       float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	Currency    string  `gorm:"size:3;default:'USD'" json:"currency"`

	Location *string `gorm:"size:255" json:"location"`
	Remote   bool    `gorm:"default:false" json:"remote"`

	Status string `gorm:"size:20;not null;default:'scheduled'" json:"status"`

	Studio     User  `gorm:"foreignkey:StudioID" json:"studio,omitempty"`
	Instructor *User `gorm:"foreignkey:InstructorID" json:"instructor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
