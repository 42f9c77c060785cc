package helpers

import (
	"testing"
	"time"
)

func TestParseNullableDate(t *testing.T) {
	if got, err := ParseNullableDate(nil); got != nil || err != nil {
		t.Errorf("nil input: got (%v, %v), want (nil, nil)", got, err)
	}

	empty := ""
	if got, err := ParseNullableDate(&empty); got != nil || err != nil {
		t.Errorf("empty input: got (%v, %v), want (nil, nil)", got, err)
	}

	for _, s := range []string{"2026-04-15", "2026-04-15T10:30:00", "2026-04-15T10:30:00Z"} {
		s := s
		got, err := ParseNullableDate(&s)
		if err != nil {
			t.Errorf("%q: unexpected error %v", s, err)
			continue
		}
		if got.Year() != 2026 || got.Month() != time.April || got.Day() != 15 {
			t.Errorf("%q parsed to %v", s, got)
		}
	}

	bad := "15/04/2026"
	if _, err := ParseNullableDate(&bad); err == nil {
		t.Error("non ISO date should not parse")
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("5m", time.Minute); got != 5*time.Minute {
		t.Errorf("got %v, want 5m", got)
	}
	if got := ParseDuration("junk", time.Minute); got != time.Minute {
		t.Errorf("got %v, want the default on parse failure", got)
	}
}
