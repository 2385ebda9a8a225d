package derive

import (
	"testing"
	"time"

	"machinery-rental-admin-api/internal/models"
)

var aggregateToday = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestAggregateCounters(t *testing.T) {
	requests := []models.RentRequest{
		{Status: StatusPending},
		{Status: StatusRejected},
		{Status: StatusApproved, RentalStartDate: "30/05/2024", NumberOfDays: 10},
		{Status: StatusApproved, RentalStartDate: "01-01-2024", NumberOfDays: 3, GrandTotal: 3000, SecurityDeposit: 500},
	}

	s := Aggregate(requests, aggregateToday)

	if s.TotalRentRequests != 4 {
		t.Errorf("TotalRentRequests = %d, want 4", s.TotalRentRequests)
	}
	if s.PendingRequests != 1 || s.RejectedRequests != 1 || s.ApprovedRequests != 2 {
		t.Errorf("stored counters = %d/%d/%d, want 1/1/2",
			s.PendingRequests, s.RejectedRequests, s.ApprovedRequests)
	}
	if s.ActiveRentals != 1 {
		t.Errorf("ActiveRentals = %d, want 1", s.ActiveRentals)
	}
	if s.CompletedRentals != 1 {
		t.Errorf("CompletedRentals = %d, want 1", s.CompletedRentals)
	}
	if s.CompletedRentalsRevenue != 2500 {
		t.Errorf("CompletedRentalsRevenue = %v, want 2500", s.CompletedRentalsRevenue)
	}
}

func TestAggregateAmountPriority(t *testing.T) {
	// All four requests are long finished; each exercises one rung of the
	// amount fallback ladder.
	requests := []models.RentRequest{
		{Status: StatusApproved, RentalStartDate: "01/01/2024", NumberOfDays: 2,
			GrandTotal: 5000, TotalRent: 9999},
		{Status: StatusApproved, RentalStartDate: "01/01/2024", NumberOfDays: 2,
			AdvancePayment: 1000, RemainingPayment: 2000, TotalRent: 9999},
		{Status: StatusApproved, RentalStartDate: "01/01/2024", NumberOfDays: 2,
			TotalRent: 4000},
		{Status: StatusApproved, RentalStartDate: "01/01/2024", NumberOfDays: 2,
			RentPerDay: 750},
	}

	s := Aggregate(requests, aggregateToday)

	// 5000 + 3000 + 4000 + 1500, no deposits.
	if s.CompletedRentalsRevenue != 13500 {
		t.Errorf("CompletedRentalsRevenue = %v, want 13500", s.CompletedRentalsRevenue)
	}
	// The advance on the second request also counts toward advance revenue.
	if s.ApprovedAdvanceRevenue != 1000 {
		t.Errorf("ApprovedAdvanceRevenue = %v, want 1000", s.ApprovedAdvanceRevenue)
	}
}

func TestAggregateDepositFloor(t *testing.T) {
	requests := []models.RentRequest{
		{Status: StatusApproved, RentalStartDate: "01/01/2024", NumberOfDays: 2,
			GrandTotal: 300, SecurityDeposit: 1000},
	}

	s := Aggregate(requests, aggregateToday)
	if s.CompletedRentalsRevenue != 0 {
		t.Errorf("CompletedRentalsRevenue = %v, want 0 (deposit exceeds total)", s.CompletedRentalsRevenue)
	}
}

func TestAggregateAdvanceRevenue(t *testing.T) {
	requests := []models.RentRequest{
		// Pending advances never count.
		{Status: StatusPending, AdvancePayment: 500},
		// Active approved rental: advance counts via the stored status.
		{Status: StatusApproved, RentalStartDate: "30/05/2024", NumberOfDays: 10, AdvancePayment: "₹1,000"},
		// Zero advance contributes nothing.
		{Status: StatusApproved, RentalStartDate: "30/05/2024", NumberOfDays: 10, AdvancePayment: 0},
	}

	s := Aggregate(requests, aggregateToday)
	if s.ApprovedAdvanceRevenue != 1000 {
		t.Errorf("ApprovedAdvanceRevenue = %v, want 1000", s.ApprovedAdvanceRevenue)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	requests := []models.RentRequest{
		{Status: StatusApproved, RentalStartDate: "01-01-2024", NumberOfDays: 3, GrandTotal: 3000, SecurityDeposit: 500},
		{Status: StatusApproved, RentalStartDate: "30/05/2024", NumberOfDays: 10, AdvancePayment: 1000},
		{Status: StatusPending},
	}

	first := Aggregate(requests, aggregateToday)
	second := Aggregate(requests, aggregateToday)
	if first != second {
		t.Errorf("Aggregate() is not stable: %+v vs %+v", first, second)
	}
}

func TestEstimatedListingRevenue(t *testing.T) {
	listings := []models.Listing{
		{Status: "approved", Price: 1000},
		{Status: "approved", Price: "₹2,000"},
		// Missing price falls back to rentPerDay.
		{Status: "approved", RentPerDay: 500},
		// Non-approved listings are excluded.
		{Status: "pending", Price: 99999},
		{Status: "rejected", Price: 99999},
	}

	got := EstimatedListingRevenue(listings)
	want := 0.3 * (1000 + 2000 + 500)
	if got != want {
		t.Errorf("EstimatedListingRevenue() = %v, want %v", got, want)
	}
}
