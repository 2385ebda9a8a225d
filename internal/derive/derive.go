// Package derive holds the shared read-time derivation logic: date and amount
// normalization, the rental display status, and the revenue aggregates. All
// functions are pure; nothing here writes back to the store.
package derive

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"machinery-rental-admin-api/internal/models"
)

// Rental display statuses. These are derived at read time from the stored
// status plus the rental dates and are never persisted.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// ParseDate parses the heterogeneous date strings the mobile app wrote for
// rentalStartDate. Attempted in order: DD/MM/YYYY or DD-MM-YYYY, then
// MM/DD/YYYY when the separator is a slash, then YYYY-MM-DD. The day-first
// attempt wins on ambiguous input like 03/04/2024; that is a known-lossy
// heuristic inherited from the data, not a guarantee about the writer's
// intent. Returns ok=false for anything unparsable; never an error.
func ParseDate(s string) (time.Time, bool) {
	str := strings.TrimSpace(s)
	if str == "" {
		return time.Time{}, false
	}

	// DD/MM/YYYY or DD-MM-YYYY
	if strings.ContainsAny(str, "/-") {
		parts := strings.FieldsFunc(str, func(r rune) bool { return r == '/' || r == '-' })
		if len(parts) == 3 {
			if t, ok := buildDate(parts[2], parts[1], parts[0]); ok {
				return t, true
			}
		}
	}

	// MM/DD/YYYY
	if strings.Contains(str, "/") {
		parts := strings.Split(str, "/")
		if len(parts) == 3 {
			if t, ok := buildDate(parts[2], parts[0], parts[1]); ok {
				return t, true
			}
		}
	}

	// YYYY-MM-DD
	if strings.Contains(str, "-") {
		parts := strings.Split(str, "-")
		if len(parts) == 3 && len(parts[0]) == 4 {
			if t, ok := buildDate(parts[0], parts[1], parts[2]); ok {
				return t, true
			}
		}
	}

	return time.Time{}, false
}

func buildDate(yearStr, monthStr, dayStr string) (time.Time, bool) {
	year, err1 := strconv.Atoi(strings.TrimSpace(yearStr))
	month, err2 := strconv.Atoi(strings.TrimSpace(monthStr))
	day, err3 := strconv.Atoi(strings.TrimSpace(dayStr))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	// Month is validated zero-based after subtracting 1, matching the stored data.
	month--
	if day < 1 || day > 31 || month < 0 || month > 11 || year < 2020 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC), true
}

// ParseAmount normalizes a money field that may be a number, a numeric string,
// or a currency-formatted string like "₹1,234.50". Everything that is not a
// digit, dot or minus sign is stripped before parsing. Returns 0 for nil,
// empty or unparsable input; never an error.
func ParseAmount(v interface{}) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		return parseAmountString(n)
	default:
		return parseAmountString(fmt.Sprintf("%v", v))
	}
}

func parseAmountString(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseDays reads the numberOfDays field, which older app versions stored as
// a string.
func ParseDays(v interface{}) int {
	return int(ParseAmount(v))
}

// Status derives the display status of a rent request as of today. Requests
// that are not approved keep their stored status. Approved requests are
// active until startDate+(numberOfDays-1), completed from that day on. When
// the start date is missing or unparsable the result is completed; this
// favors not under-counting finished rentals and is preserved for
// compatibility with the stored data.
func Status(req models.RentRequest, today time.Time) string {
	if req.Status != StatusApproved {
		return req.Status
	}

	days := ParseDays(req.NumberOfDays)
	if req.RentalStartDate == "" || days <= 0 {
		return StatusCompleted
	}

	start, ok := ParseDate(req.RentalStartDate)
	if !ok {
		return StatusCompleted
	}

	end := midnight(start.AddDate(0, 0, days-1))
	if !midnight(today).Before(end) {
		return StatusCompleted
	}
	return StatusActive
}

// EndDate returns the last rental day, when it can be computed.
func EndDate(req models.RentRequest) (time.Time, bool) {
	days := ParseDays(req.NumberOfDays)
	if req.RentalStartDate == "" || days <= 0 {
		return time.Time{}, false
	}
	start, ok := ParseDate(req.RentalStartDate)
	if !ok {
		return time.Time{}, false
	}
	return start.AddDate(0, 0, days-1), true
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StatusLabel maps a stored or derived status to its display label. A stored
// "approved" that has not been re-derived yet shows as Active.
func StatusLabel(status string) string {
	switch status {
	case StatusActive:
		return "Active"
	case StatusCompleted:
		return "Completed"
	case StatusApproved:
		return "Active"
	case StatusRejected:
		return "Rejected"
	case StatusPending:
		return "Pending"
	default:
		return strings.ToUpper(status)
	}
}
