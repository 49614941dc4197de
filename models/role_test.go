package models

import "testing"

func TestCanonicalizeRole(t *testing.T) {
	cases := []struct {
		raw  string
		want CanonicalRole
	}{
		{"merchant", RoleMerchant},
		{"studio", RoleMerchant},
		{"studio-owner", RoleMerchant},
		{"Studio-Owner", RoleMerchant},
		{"MERCHANT", RoleMerchant},
		{"instructor", RoleInstructor},
		{"Instructor", RoleInstructor},
		{"customer", RoleCustomer},
		{"admin", RoleUnknown},
		{"coach", RoleUnknown},
		{"", RoleUnknown},
		{"   ", RoleUnknown},
		{"studio_owner", RoleUnknown},
	}

	for _, tc := range cases {
		if got := CanonicalizeRole(tc.raw); got != tc.want {
			t.Errorf("CanonicalizeRole(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestCanonicalizeRoleIdempotent(t *testing.T) {
	inputs := []string{"merchant", "studio", "Studio-Owner", "instructor", "customer", "whatever", ""}
	for _, raw := range inputs {
		once := CanonicalizeRole(raw)
		twice := CanonicalizeRole(string(once))
		if once != twice {
			t.Errorf("CanonicalizeRole not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestMarketplaceEligible(t *testing.T) {
	if !RoleMerchant.MarketplaceEligible() {
		t.Error("merchant should be marketplace eligible")
	}
	if !RoleInstructor.MarketplaceEligible() {
		t.Error("instructor should be marketplace eligible")
	}
	if RoleCustomer.MarketplaceEligible() {
		t.Error("customer should not be marketplace eligible")
	}
	if RoleUnknown.MarketplaceEligible() {
		t.Error("unknown should not be marketplace eligible")
	}
}
