package financecalc

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestLeaseScheduleTotalMatchesPayments(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		term      int
	}{
		{250000, 5.5, 360},
		{10000, 12, 12},
		{750, 0.25, 6},
		{1000000, 18, 240},
	}

	for _, tc := range cases {
		sched, err := LeaseSchedule(tc.principal, tc.rate, tc.term)
		if err != nil {
			t.Fatalf("LeaseSchedule(%v, %v, %d): %v", tc.principal, tc.rate, tc.term, err)
		}
		if sched.MonthlyPayment <= 0 {
			t.Fatalf("expected positive payment, got %v", sched.MonthlyPayment)
		}

		var sum float64
		for _, p := range sched.Periods {
			sum += p.Payment
		}
		if math.Abs(sum-sched.TotalPayable) > 0.01 {
			t.Fatalf("total %v does not match summed payments %v", sched.TotalPayable, sum)
		}
		if math.Abs(sched.TotalPayable-(tc.principal+sched.TotalRent)) > 0.01 {
			t.Fatalf("total %v does not match principal+rent %v", sched.TotalPayable, tc.principal+sched.TotalRent)
		}
	}
}

func TestLeaseScheduleZeroRate(t *testing.T) {
	sched, err := LeaseSchedule(12000, 0, 12)
	if err != nil {
		t.Fatalf("LeaseSchedule: %v", err)
	}
	if sched.MonthlyPayment != 1000 {
		t.Fatalf("expected exact P/n payment, got %v", sched.MonthlyPayment)
	}
	if sched.TotalRent != 0 {
		t.Fatalf("expected zero rent, got %v", sched.TotalRent)
	}
}

func TestLeaseScheduleInvalidInput(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		term      int
	}{
		{0, 5, 12},
		{-100, 5, 12},
		{1000, -1, 12},
		{1000, 5, 0},
		{1000, 5, -3},
		{math.NaN(), 5, 12},
		{1000, math.Inf(1), 12},
	}
	for _, tc := range cases {
		if _, err := LeaseSchedule(tc.principal, tc.rate, tc.term); err != ErrInvalidInput {
			t.Fatalf("LeaseSchedule(%v, %v, %d): expected ErrInvalidInput, got %v", tc.principal, tc.rate, tc.term, err)
		}
	}
}

func TestDiminishingOwnershipShares(t *testing.T) {
	sched, err := DiminishingOwnershipSchedule(500000, 6, 120, 20)
	if err != nil {
		t.Fatalf("DiminishingOwnershipSchedule: %v", err)
	}

	prev := math.Inf(1)
	for _, p := range sched.Periods {
		if p.OwnerShare == nil || p.FinancierShare == nil {
			t.Fatalf("period %d: missing ownership shares", p.Index)
		}
		if math.Abs(*p.OwnerShare+*p.FinancierShare-1) > 1e-9 {
			t.Fatalf("period %d: shares sum to %v", p.Index, *p.OwnerShare+*p.FinancierShare)
		}
		if *p.FinancierShare > prev+1e-9 {
			t.Fatalf("period %d: financier share increased from %v to %v", p.Index, prev, *p.FinancierShare)
		}
		prev = *p.FinancierShare
	}

	last := sched.Periods[len(sched.Periods)-1]
	if *last.FinancierShare != 0 {
		t.Fatalf("expected terminal financier share 0, got %v", *last.FinancierShare)
	}
}

func TestDiminishingOwnershipInitialShareBounds(t *testing.T) {
	for _, share := range []float64{-1, 101, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := DiminishingOwnershipSchedule(1000, 5, 12, share); err != ErrInvalidInput {
			t.Fatalf("share %v: expected ErrInvalidInput, got %v", share, err)
		}
	}
}

func TestScheduleJSONKeepsTerminalFinancierShare(t *testing.T) {
	sched, err := DiminishingOwnershipSchedule(1000, 6, 2, 0)
	if err != nil {
		t.Fatalf("DiminishingOwnershipSchedule: %v", err)
	}

	encoded, err := json.Marshal(sched.Periods[len(sched.Periods)-1])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(encoded), `"financier_share":0`) {
		t.Fatalf("terminal period lost its financier share: %s", encoded)
	}

	lease, err := LeaseSchedule(1000, 6, 2)
	if err != nil {
		t.Fatalf("LeaseSchedule: %v", err)
	}
	encoded, err = json.Marshal(lease.Periods[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(encoded), "owner_share") {
		t.Fatalf("lease periods must not carry ownership shares: %s", encoded)
	}
}

func TestDiminishingOwnershipRentDeclines(t *testing.T) {
	sched, err := DiminishingOwnershipSchedule(120000, 12, 24, 0)
	if err != nil {
		t.Fatalf("DiminishingOwnershipSchedule: %v", err)
	}
	for i := 1; i < len(sched.Periods); i++ {
		if sched.Periods[i].RentPortion > sched.Periods[i-1].RentPortion {
			t.Fatalf("period %d: rent increased", i+1)
		}
	}
}

func TestMarkupInstallmentTotalIndependentOfTerm(t *testing.T) {
	const cost, markup = 80000.0, 15.0
	want := cost * (1 + markup/100)

	for _, term := range []int{6, 12, 24, 60} {
		sched, err := MarkupInstallment(cost, markup, term)
		if err != nil {
			t.Fatalf("MarkupInstallment(n=%d): %v", term, err)
		}
		if math.Abs(sched.TotalPayable-want) > 1e-6 {
			t.Fatalf("n=%d: total %v, want %v", term, sched.TotalPayable, want)
		}
		if math.Abs(sched.MonthlyPayment*float64(term)-want) > 0.01 {
			t.Fatalf("n=%d: installment*n %v, want %v", term, sched.MonthlyPayment*float64(term), want)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(10.006); got != 10.01 {
		t.Fatalf("Round2(10.006) = %v", got)
	}
	if got := Round2(1234.5649); got != 1234.56 {
		t.Fatalf("Round2(1234.5649) = %v", got)
	}
}
