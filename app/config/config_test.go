package config

import (
	"testing"
	"time"
)

func TestResolveSchoolYear(t *testing.T) {
	t.Setenv("SCHOOL_YEAR", "")

	tests := []struct {
		name string
		date string
		want string
	}{
		{"mid school year", "2025-01-15", "2024-2025"},
		{"last month before rollover", "2025-05-31", "2024-2025"},
		{"rollover month", "2025-06-01", "2025-2026"},
		{"late in calendar year", "2025-11-20", "2025-2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now, err := time.Parse("2006-01-02", tt.date)
			if err != nil {
				t.Fatal(err)
			}
			if got := ResolveSchoolYear(now); got != tt.want {
				t.Errorf("ResolveSchoolYear(%s) = %s, want %s", tt.date, got, tt.want)
			}
		})
	}
}

func TestResolveSchoolYearEnvOverride(t *testing.T) {
	t.Setenv("SCHOOL_YEAR", "2030-2031")

	now, _ := time.Parse("2006-01-02", "2025-01-15")
	if got := ResolveSchoolYear(now); got != "2030-2031" {
		t.Errorf("ResolveSchoolYear with env override = %s, want 2030-2031", got)
	}
}
