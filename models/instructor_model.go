package models

import (
	"time"

	"github.com/google/uuid"
)

// InstructorProfile is the marketplace-facing record for an instructor.
// Created on the first profile write and never hard-deleted; only the owning
// instructor mutates it (admin flips Verified).
type InstructorProfile struct {
	UserID uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`

	DisplayName *string `gorm:"size:255" json:"display_name"`
	Bio         *string `gorm:"type:text" json:"bio"`

	Specialties    []string `gorm:"serializer:json" json:"specialties"`
	Certifications []string `gorm:"serializer:json" json:"certifications"`
	Languages      []string `gorm:"serializer:json" json:"languages"`

	YearsExperience   *int    `json:"years_experience"`
	HourlyRate        float64 `gorm:"type:numeric(10,2);default:0" json:"hourly_rate"`
	Currency          string  `gorm:"size:3;default:'USD'" json:"currency"`
	MinSessionMinutes *int    `json:"min_session_minutes"`

	RemoteAvailable bool     `gorm:"default:false" json:"remote_available"`
	TravelRadiusKm  *float64 `json:"travel_radius_km"`
	TimeZone        *string  `gorm:"size:100" json:"time_zone"`
	Location        *string  `gorm:"size:255" json:"location"`
	Lat             *float64 `json:"lat"`
	Lng             *float64 `json:"lng"`

	MarketplaceVisible bool      `gorm:"default:false;index" json:"marketplace_visible"`
	Verified           bool      `gorm:"default:false" json:"verified"`
	LastActiveAt       time.Time `json:"last_active_at"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}
