package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestClampProposedRate(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{-50, 10},
		{0, 10},
		{9.99, 10},
		{10, 10},
		{75, 75},
		{500, 500},
		{500.01, 500},
		{10000, 500},
	}

	for _, tc := range cases {
		if got := ClampProposedRate(tc.in); got != tc.want {
			t.Errorf("ClampProposedRate(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClampFeeCents(t *testing.T) {
	if got := ClampFeeCents(-100); got != 0 {
		t.Errorf("ClampFeeCents(-100) = %d, want 0", got)
	}
	if got := ClampFeeCents(0); got != 0 {
		t.Errorf("ClampFeeCents(0) = %d, want 0", got)
	}
	if got := ClampFeeCents(2500); got != 2500 {
		t.Errorf("ClampFeeCents(2500) = %d, want 2500", got)
	}
}

func TestLinkBlocksNewInvite(t *testing.T) {
	cases := []struct {
		status string
		blocks bool
	}{
		{LinkStatusInvited, true},
		{LinkStatusActive, true},
		{LinkStatusRejected, false},
		{LinkStatusBlocked, false},
		{"", false},
	}

	for _, tc := range cases {
		if got := LinkBlocksNewInvite(tc.status); got != tc.blocks {
			t.Errorf("LinkBlocksNewInvite(%q) = %v, want %v", tc.status, got, tc.blocks)
		}
	}
}

func TestInviteOwnership(t *testing.T) {
	studioID := uuid.New()
	instructorID := uuid.New()

	if !CanRespondToInvite(instructorID.String(), instructorID) {
		t.Error("invited instructor should be able to respond")
	}
	if CanRespondToInvite(studioID.String(), instructorID) {
		t.Error("studio must not respond to its own invite")
	}
	if CanRespondToInvite("", instructorID) {
		t.Error("empty acting id must not respond")
	}

	if !CanWithdrawInvite(studioID.String(), studioID) {
		t.Error("inviting studio should be able to withdraw")
	}
	if CanWithdrawInvite(instructorID.String(), studioID) {
		t.Error("instructor must not withdraw a studio's invite")
	}
	if CanWithdrawInvite(uuid.New().String(), studioID) {
		t.Error("unrelated user must not withdraw")
	}
}

func TestLinkIsExpired(t *testing.T) {
	now := time.Now()
	link := MarketplaceLink{ExpiresAt: now.Add(time.Hour)}

	if link.IsExpired(now) {
		t.Error("link expiring in an hour should not be expired")
	}
	if !link.IsExpired(now.Add(2 * time.Hour)) {
		t.Error("link past its expiry should be expired")
	}
	if link.IsExpired(link.ExpiresAt) {
		t.Error("link exactly at expiry should not yet be expired")
	}
}
