package derive

import (
	"time"

	"machinery-rental-admin-api/internal/models"
)

// Summary is the dashboard aggregate over the full rentRequests collection.
type Summary struct {
	TotalRentRequests       int     `json:"totalRentRequests"`
	PendingRequests         int     `json:"pendingRequests"`
	ApprovedRequests        int     `json:"approvedRequests"`
	RejectedRequests        int     `json:"rejectedRequests"`
	ActiveRentals           int     `json:"activeRentals"`
	CompletedRentals        int     `json:"completedRentals"`
	CompletedRentalsRevenue float64 `json:"completedRentalsRevenue"`
	ApprovedAdvanceRevenue  float64 `json:"approvedAdvanceRevenue"`
}

// Aggregate folds the full rent-request set into the dashboard counters. It is
// a pure fold over the snapshot it is given: running it twice on the same
// slice yields identical totals.
//
// Completed-rental revenue takes, per completed request, the first non-zero of
// grandTotal, advance+remaining, totalRent and rentPerDay*days, minus the
// security deposit, floored at zero. Advance revenue sums advancePayment once
// for every request that ever reached the rented state (stored approved or
// derived completed) when the advance is positive.
func Aggregate(requests []models.RentRequest, today time.Time) Summary {
	var s Summary
	for _, req := range requests {
		s.TotalRentRequests++

		switch req.Status {
		case StatusPending:
			s.PendingRequests++
		case StatusApproved:
			s.ApprovedRequests++
		case StatusRejected:
			s.RejectedRequests++
		}

		derived := Status(req, today)
		switch derived {
		case StatusActive:
			s.ActiveRentals++
		case StatusCompleted:
			s.CompletedRentals++
			net := chosenAmount(req) - ParseAmount(req.SecurityDeposit)
			if net < 0 {
				net = 0
			}
			s.CompletedRentalsRevenue += net
		}

		advance := ParseAmount(req.AdvancePayment)
		if advance > 0 && (req.Status == StatusApproved || derived == StatusCompleted) {
			s.ApprovedAdvanceRevenue += advance
		}
	}
	return s
}

func chosenAmount(req models.RentRequest) float64 {
	if v := ParseAmount(req.GrandTotal); v != 0 {
		return v
	}
	if v := ParseAmount(req.AdvancePayment) + ParseAmount(req.RemainingPayment); v != 0 {
		return v
	}
	if v := ParseAmount(req.TotalRent); v != 0 {
		return v
	}
	return ParseAmount(req.RentPerDay) * float64(ParseDays(req.NumberOfDays))
}

// EstimatedListingRevenue is the dashboard's listing-side figure: a flat 30%
// assumed commission on the price of every approved listing. It is independent
// of actual rent-request amounts.
func EstimatedListingRevenue(listings []models.Listing) float64 {
	var total float64
	for _, l := range listings {
		if l.Status != StatusApproved {
			continue
		}
		price := ParseAmount(l.Price)
		if price == 0 {
			price = ParseAmount(l.RentPerDay)
		}
		total += price * 0.3
	}
	return total
}
