package membership_test

import (
	"testing"
	"time"

	"gymtrack/internal/domain/membership"
)

// TestStatusFor exercises the end-date edge cases around today.
func TestStatusFor(t *testing.T) {
	today := time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name    string
		endDate string
		want    string
	}{
		{"end date equal to today", "2026-03-15", membership.StatusActive},
		{"end date one day before today", "2026-03-14", membership.StatusExpired},
		{"end date in the future", "2026-04-01", membership.StatusActive},
		{"end date long past", "2020-01-01", membership.StatusExpired},
		{"no end date", "", membership.StatusNoMembership},
		{"unparsable end date", "15/03/2026", membership.StatusUnknown},
		{"garbage end date", "soon", membership.StatusUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := membership.StatusFor(tt.endDate, today); got != tt.want {
				t.Fatalf("StatusFor(%q)=%q want %q", tt.endDate, got, tt.want)
			}
		})
	}
}

// TestPackageValidate verifies pricing-tier validation.
func TestPackageValidate(t *testing.T) {
	p := membership.Package{PackageName: "Gold", Price: 49.90, DurationDays: 30}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []membership.Package{
		{PackageName: "", Price: 10, DurationDays: 30},
		{PackageName: "Gold", Price: -1, DurationDays: 30},
		{PackageName: "Gold", Price: 10, DurationDays: 0},
	}
	for i, p := range bad {
		if err := p.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}
