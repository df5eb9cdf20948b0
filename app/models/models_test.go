package models

import (
	"testing"
	"time"
)

func TestValidSchoolYear(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-2025", true},
		{"1999-2000", true},
		{"2024", false},
		{"2024-25", false},
		{"24-25", false},
		{"", false},
		{"2024/2025", false},
	}
	for _, tt := range tests {
		if got := ValidSchoolYear(tt.in); got != tt.want {
			t.Errorf("ValidSchoolYear(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCustomTimeUnmarshalJSON(t *testing.T) {
	var ct CustomTime
	if err := ct.UnmarshalJSON([]byte(`"2025-03-14"`)); err != nil {
		t.Fatal(err)
	}
	if ct.Format("2006-01-02") != "2025-03-14" {
		t.Errorf("parsed %s, want 2025-03-14", ct.Format("2006-01-02"))
	}

	if err := ct.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatal(err)
	}
	if !ct.IsZero() {
		t.Error("null should yield zero time")
	}

	if err := ct.UnmarshalJSON([]byte(`"14/03/2025"`)); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestAnnouncementIsVisible(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	later := now.Add(24 * time.Hour)
	earlier := now.Add(-24 * time.Hour)

	tests := []struct {
		name string
		a    Announcement
		want bool
	}{
		{"inside window", Announcement{PublishAt: earlier, ExpiresAt: &later}, true},
		{"no expiry", Announcement{PublishAt: earlier}, true},
		{"not published yet", Announcement{PublishAt: later}, false},
		{"expired", Announcement{PublishAt: earlier.Add(-48 * time.Hour), ExpiresAt: &earlier}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IsVisible(now); got != tt.want {
				t.Errorf("IsVisible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBorrowRecordIsOverdue(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	out := BorrowRecord{DueDate: past}
	if !out.IsOverdue(now) {
		t.Error("unreturned past-due record should be overdue")
	}

	returned := BorrowRecord{DueDate: past, ReturnedAt: &past}
	if returned.IsOverdue(now) {
		t.Error("returned record should never be overdue")
	}

	current := BorrowRecord{DueDate: future}
	if current.IsOverdue(now) {
		t.Error("record before due date should not be overdue")
	}
}
