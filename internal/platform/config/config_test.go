package config

import (
	"testing"
	"time"

	"mouthsoap/internal/platform/testkit"
)

func TestPrefixComposition(t *testing.T) {
	t.Setenv("APP_API_PORT", ":9999")
	c := New().Prefix("APP_").Prefix("API_")
	if got := c.MustString("PORT"); got != ":9999" {
		t.Fatalf("got %q", got)
	}
}

func TestMustStringPanicsWhenMissing(t *testing.T) {
	c := New().Prefix("MOUTHSOAP_TEST_")
	testkit.MustPanic(t, func() { c.MustString("NOPE") })
}

func TestMustIntParses(t *testing.T) {
	t.Setenv("MOUTHSOAP_TEST_N", "42")
	c := New().Prefix("MOUTHSOAP_TEST_")
	if got := c.MustInt("N"); got != 42 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("MOUTHSOAP_TEST_N", "nope")
	testkit.MustPanic(t, func() { c.MustInt("N") })
}

func TestMayDefaults(t *testing.T) {
	c := New().Prefix("MOUTHSOAP_TEST_")

	if got := c.MayString("S", "def"); got != "def" {
		t.Errorf("MayString = %q", got)
	}
	if got := c.MayInt("I", 7); got != 7 {
		t.Errorf("MayInt = %d", got)
	}
	if got := c.MayBool("B", true); got != true {
		t.Errorf("MayBool = %v", got)
	}
	if got := c.MayDuration("D", time.Second); got != time.Second {
		t.Errorf("MayDuration = %v", got)
	}

	t.Setenv("MOUTHSOAP_TEST_B", "false")
	if got := c.MayBool("B", true); got != false {
		t.Errorf("MayBool with env = %v", got)
	}
	t.Setenv("MOUTHSOAP_TEST_D", "250ms")
	if got := c.MayDuration("D", time.Second); got != 250*time.Millisecond {
		t.Errorf("MayDuration with env = %v", got)
	}
}
