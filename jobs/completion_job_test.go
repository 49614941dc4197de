package jobs

import "testing"

func TestSweepStatus(t *testing.T) {
	cases := []struct {
		current string
		next    string
		swept   bool
	}{
		{"confirmed", "completed", true},
		{"pending_payment", "unattended", true},
		{"cancelled", "", false},
		{"completed", "", false},
		{"unattended", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		next, swept := sweepStatus(tc.current)
		if next != tc.next || swept != tc.swept {
			t.Errorf("sweepStatus(%q) = (%q, %v), want (%q, %v)",
				tc.current, next, swept, tc.next, tc.swept)
		}
	}
}
