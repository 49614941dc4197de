package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	LinkStatusInvited  = "invited"
	LinkStatusActive   = "active"
	LinkStatusRejected = "rejected"
	LinkStatusBlocked  = "blocked"
)

const (
	// Proposed hourly rates on an invite are clamped into this range.
	MinProposedRate = 10.0
	MaxProposedRate = 500.0
)

// MarketplaceLink is the studio-to-instructor collaboration record. The
// composite primary key guarantees at most one link per pair; both ids travel
// in URLs and queries as a tuple, never as a concatenated string.
type MarketplaceLink struct {
	StudioID     uuid.UUID `gorm:"type:uuid;primary_key" json:"studio_id"`
	InstructorID uuid.UUID `gorm:"type:uuid;primary_key" json:"instructor_id"`

	Status         string     `gorm:"size:20;not null;default:'invited';index" json:"status"`
	ProposedRate   float64    `gorm:"type:numeric(10,2)" json:"proposed_rate"`
	Currency       string     `gorm:"size:3;default:'USD'" json:"currency"`
	CancelFeeCents int64      `gorm:"default:0" json:"cancel_fee_cents"`
	NoShowFeeCents int64      `gorm:"default:0" json:"no_show_fee_cents"`
	Note           *string    `gorm:"type:text" json:"note"`
	ClassID        *uuid.UUID `gorm:"type:uuid" json:"class_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired is derived, never stored: an invite past its ExpiresAt is still
// whatever status it holds, callers just surface the flag.
func (l MarketplaceLink) IsExpired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}

// LinkBlocksNewInvite reports whether an existing link in the given status
// forbids a fresh invite for the same pair. Rejected and blocked links get
// overwritten instead.
func LinkBlocksNewInvite(status string) bool {
	return status == LinkStatusInvited || status == LinkStatusActive
}

// CanRespondToInvite allows only the invited instructor to answer.
func CanRespondToInvite(actingID string, instructorID uuid.UUID) bool {
	return actingID == instructorID.String()
}

// CanWithdrawInvite allows only the inviting studio to withdraw.
func CanWithdrawInvite(actingID string, studioID uuid.UUID) bool {
	return actingID == studioID.String()
}

// ClampProposedRate forces an invite's hourly rate into [MinProposedRate,
// MaxProposedRate].
func ClampProposedRate(rate float64) float64 {
	if rate < MinProposedRate {
		return MinProposedRate
	}
	if rate > MaxProposedRate {
		return MaxProposedRate
	}
	return rate
}

// ClampFeeCents floors negative fee amounts to zero.
func ClampFeeCents(cents int64) int64 {
	if cents < 0 {
		return 0
	}
	return cents
}
