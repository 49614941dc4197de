package config

import "testing"

func TestConfigOr(t *testing.T) {
	t.Setenv("FIT_MARKETPLACE_TEST_KEY", "")
	if got := ConfigOr("FIT_MARKETPLACE_TEST_KEY", "fallback"); got != "fallback" {
		t.Errorf("ConfigOr on empty key = %q, want fallback", got)
	}

	t.Setenv("FIT_MARKETPLACE_TEST_KEY", "set")
	if got := ConfigOr("FIT_MARKETPLACE_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("ConfigOr on set key = %q, want set", got)
	}
}
