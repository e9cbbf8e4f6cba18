// Package financecalc computes payment schedules for interest-free
// financing structures. All functions are pure; callers may invoke them
// concurrently without coordination.
//
// Monetary values stay as unrounded float64 through every intermediate
// step. Round2 is applied once, at the presentation boundary, so
// per-period rounding never drifts the totals.
package financecalc

import (
	"errors"
	"math"
)

// ErrInvalidInput reports parameters outside the valid numeric domain.
var ErrInvalidInput = errors.New("invalid calculator input")

// Period is one row of a payment schedule. Values are unrounded.
type Period struct {
	Index            int     `json:"index"`
	Payment          float64 `json:"payment"`
	RentPortion      float64 `json:"rent_portion"`
	PrincipalPortion float64 `json:"principal_portion"`
	RemainingBalance float64 `json:"remaining_balance"`

	// Ownership shares, filled only by the diminishing-ownership
	// variant. OwnerShare + FinancierShare is always 1. Pointers so the
	// terminal financier share of 0 still marshals while the other
	// variants omit both keys.
	OwnerShare     *float64 `json:"owner_share,omitempty"`
	FinancierShare *float64 `json:"financier_share,omitempty"`
}

// Schedule is the result of a schedule computation.
type Schedule struct {
	MonthlyPayment float64  `json:"monthly_payment"`
	TotalPayable   float64  `json:"total_payable"`
	TotalRent      float64  `json:"total_rent"`
	Periods        []Period `json:"periods"`
}

// LeaseSchedule models a fixed-rent lease-to-own structure with a level
// monthly payment from the standard annuity formula. A zero rate
// degenerates to equal principal installments.
func LeaseSchedule(principal, annualRatePercent float64, termMonths int) (*Schedule, error) {
	if err := validateBase(principal, annualRatePercent, termMonths); err != nil {
		return nil, err
	}

	n := float64(termMonths)
	r := annualRatePercent / 100 / 12

	var payment float64
	if r == 0 {
		payment = principal / n
	} else {
		growth := math.Pow(1+r, n)
		payment = principal * r * growth / (growth - 1)
	}

	periods := make([]Period, 0, termMonths)
	balance := principal
	totalRent := 0.0
	for i := 1; i <= termMonths; i++ {
		rent := balance * r
		principalPortion := payment - rent
		balance -= principalPortion
		if i == termMonths {
			// Absorb the residual float dust into the last period.
			balance = 0
		}
		totalRent += rent
		periods = append(periods, Period{
			Index:            i,
			Payment:          payment,
			RentPortion:      rent,
			PrincipalPortion: principalPortion,
			RemainingBalance: balance,
		})
	}

	return &Schedule{
		MonthlyPayment: payment,
		TotalPayable:   payment * n,
		TotalRent:      totalRent,
		Periods:        periods,
	}, nil
}

// DiminishingOwnershipSchedule models a co-ownership structure. The
// buyer's share starts at initialOwnerSharePercent and grows by a fixed
// principal installment each period; rent accrues only on the remaining
// financier-owned balance.
func DiminishingOwnershipSchedule(principal, annualRatePercent float64, termMonths int, initialOwnerSharePercent float64) (*Schedule, error) {
	if err := validateBase(principal, annualRatePercent, termMonths); err != nil {
		return nil, err
	}
	if math.IsNaN(initialOwnerSharePercent) || math.IsInf(initialOwnerSharePercent, 0) ||
		initialOwnerSharePercent < 0 || initialOwnerSharePercent > 100 {
		return nil, ErrInvalidInput
	}

	n := float64(termMonths)
	r := annualRatePercent / 100 / 12
	financed := principal * (1 - initialOwnerSharePercent/100)
	installment := financed / n

	periods := make([]Period, 0, termMonths)
	balance := financed
	totalRent := 0.0
	totalPayable := 0.0
	for i := 1; i <= termMonths; i++ {
		rent := balance * r
		payment := rent + installment
		balance -= installment
		if i == termMonths {
			balance = 0
		}

		financierShare := balance / principal
		ownerShare := 1 - financierShare
		totalRent += rent
		totalPayable += payment
		periods = append(periods, Period{
			Index:            i,
			Payment:          payment,
			RentPortion:      rent,
			PrincipalPortion: installment,
			RemainingBalance: balance,
			OwnerShare:       &ownerShare,
			FinancierShare:   &financierShare,
		})
	}

	first := 0.0
	if len(periods) > 0 {
		first = periods[0].Payment
	}
	return &Schedule{
		MonthlyPayment: first,
		TotalPayable:   totalPayable,
		TotalRent:      totalRent,
		Periods:        periods,
	}, nil
}

// MarkupInstallment models a cost-plus-markup sale. The markup is flat
// and disclosed once; it is never compounded per period, which is the
// defining difference from the rate-based variants.
func MarkupInstallment(costBasis, markupPercent float64, termMonths int) (*Schedule, error) {
	if err := validateBase(costBasis, markupPercent, termMonths); err != nil {
		return nil, err
	}

	n := float64(termMonths)
	total := costBasis * (1 + markupPercent/100)
	installment := total / n
	markup := total - costBasis

	periods := make([]Period, 0, termMonths)
	balance := total
	for i := 1; i <= termMonths; i++ {
		balance -= installment
		if i == termMonths {
			balance = 0
		}
		periods = append(periods, Period{
			Index:            i,
			Payment:          installment,
			RentPortion:      markup / n,
			PrincipalPortion: costBasis / n,
			RemainingBalance: balance,
		})
	}

	return &Schedule{
		MonthlyPayment: installment,
		TotalPayable:   total,
		TotalRent:      markup,
		Periods:        periods,
	}, nil
}

// Round2 rounds a monetary value to cents. Apply at the presentation
// boundary only.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func validateBase(amount, ratePercent float64, termMonths int) error {
	if amount <= 0 || termMonths <= 0 || ratePercent < 0 {
		return ErrInvalidInput
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || math.IsNaN(ratePercent) || math.IsInf(ratePercent, 0) {
		return ErrInvalidInput
	}
	return nil
}
