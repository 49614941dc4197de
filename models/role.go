package models

import "strings"

type CanonicalRole string

const (
	RoleMerchant   CanonicalRole = "merchant"
	RoleInstructor CanonicalRole = "instructor"
	RoleCustomer   CanonicalRole = "customer"
	RoleUnknown    CanonicalRole = "unknown"
)

// CanonicalizeRole maps the free-form role string stored on a user to one of
// the four canonical marketplace roles. Never fails; anything unrecognized
// (including the empty string) is RoleUnknown.
func CanonicalizeRole(raw string) CanonicalRole {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "merchant", "studio", "studio-owner":
		return RoleMerchant
	case "instructor":
		return RoleInstructor
	case "customer":
		return RoleCustomer
	default:
		return RoleUnknown
	}
}

// MarketplaceEligible reports whether the role may access marketplace
// endpoints (directory, invites).
func (r CanonicalRole) MarketplaceEligible() bool {
	return r == RoleMerchant || r == RoleInstructor
}
