package derive

import (
	"testing"
	"time"

	"machinery-rental-admin-api/internal/models"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"15/06/2024", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"15-06-2024", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024-06-15", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), true},
		// Ambiguous input resolves day-first.
		{"03/04/2024", time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), true},
		// Day-first fails on day>12, so the month-first reading wins.
		{"06/15/2024", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"not-a-date", time.Time{}, false},
		{"32/13/2024", time.Time{}, false},
		{"15/00/2024", time.Time{}, false},
		// Years before 2020 predate the platform and are rejected.
		{"15/06/2019", time.Time{}, false},
	}

	for _, tc := range cases {
		got, ok := ParseDate(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && !got.Equal(tc.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
	}{
		{nil, 0},
		{"", 0},
		{"abc", 0},
		{500, 500},
		{int64(750), 750},
		{1234.5, 1234.5},
		{"1500", 1500},
		{"₹1,234.50", 1234.5},
		{"Rs 2,000", 2000},
		{"-300", -300},
	}

	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Errorf("ParseAmount(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDays(t *testing.T) {
	if got := ParseDays("5"); got != 5 {
		t.Errorf("ParseDays(\"5\") = %d, want 5", got)
	}
	if got := ParseDays(7); got != 7 {
		t.Errorf("ParseDays(7) = %d, want 7", got)
	}
	if got := ParseDays(nil); got != 0 {
		t.Errorf("ParseDays(nil) = %d, want 0", got)
	}
}

func TestStatus(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		req  models.RentRequest
		want string
	}{
		{
			name: "pending stays pending",
			req:  models.RentRequest{Status: StatusPending, RentalStartDate: "01/05/2024", NumberOfDays: 5},
			want: StatusPending,
		},
		{
			name: "rejected stays rejected",
			req:  models.RentRequest{Status: StatusRejected},
			want: StatusRejected,
		},
		{
			name: "approved rental in the past is completed",
			req:  models.RentRequest{Status: StatusApproved, RentalStartDate: "01/05/2024", NumberOfDays: 5},
			want: StatusCompleted,
		},
		{
			name: "approved rental still running is active",
			req:  models.RentRequest{Status: StatusApproved, RentalStartDate: "30/05/2024", NumberOfDays: 10},
			want: StatusActive,
		},
		{
			name: "last rental day counts as completed",
			req:  models.RentRequest{Status: StatusApproved, RentalStartDate: "28/05/2024", NumberOfDays: 5},
			want: StatusCompleted,
		},
		{
			name: "approved with unparsable date is completed",
			req:  models.RentRequest{Status: StatusApproved, RentalStartDate: "someday", NumberOfDays: 5},
			want: StatusCompleted,
		},
		{
			name: "approved with missing date is completed",
			req:  models.RentRequest{Status: StatusApproved, NumberOfDays: 5},
			want: StatusCompleted,
		},
		{
			name: "approved with zero days is completed",
			req:  models.RentRequest{Status: StatusApproved, RentalStartDate: "30/05/2024", NumberOfDays: 0},
			want: StatusCompleted,
		},
		{
			name: "string day count is parsed",
			req:  models.RentRequest{Status: StatusApproved, RentalStartDate: "30/05/2024", NumberOfDays: "10"},
			want: StatusActive,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Status(tc.req, today); got != tc.want {
				t.Errorf("Status() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEndDate(t *testing.T) {
	req := models.RentRequest{RentalStartDate: "01/05/2024", NumberOfDays: 5}
	end, ok := EndDate(req)
	if !ok {
		t.Fatal("EndDate() ok = false, want true")
	}
	want := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	if !end.Equal(want) {
		t.Errorf("EndDate() = %v, want %v", end, want)
	}

	if _, ok := EndDate(models.RentRequest{RentalStartDate: "garbage", NumberOfDays: 5}); ok {
		t.Error("EndDate() ok = true for unparsable date, want false")
	}
}

func TestStatusLabel(t *testing.T) {
	cases := map[string]string{
		StatusActive:    "Active",
		StatusCompleted: "Completed",
		StatusApproved:  "Active",
		StatusRejected:  "Rejected",
		StatusPending:   "Pending",
		"weird":         "WEIRD",
	}
	for in, want := range cases {
		if got := StatusLabel(in); got != want {
			t.Errorf("StatusLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
