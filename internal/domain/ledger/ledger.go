// Package ledger owns the arithmetic relating a loan's principal, interest
// and repayments to its outstanding balance. Every write path that touches a
// loan's pending amount must derive it here; nothing else may compute it.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusClosed Status = "CLOSED"
)

// Pending returns max(principal - sum(repayments), 0), rounded to 2 decimal
// places. Over-payment clamps to zero rather than erroring; callers rely on
// the clamp to close loans whose collected total exceeds the principal.
func Pending(principal float64, repayments []float64) float64 {
	total := decimal.Zero
	for _, r := range repayments {
		total = total.Add(decimal.NewFromFloat(r))
	}
	p := decimal.NewFromFloat(principal).Sub(total)
	if p.IsNegative() {
		return 0
	}
	f, _ := p.Round(2).Float64()
	return f
}

// Interest is the flat, non-compounding charge: amount * rate * tenure / 100.
func Interest(amount, rate float64, tenureMonths int) float64 {
	v := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(rate)).
		Mul(decimal.NewFromInt(int64(tenureMonths))).
		Div(decimal.NewFromInt(100))
	f, _ := v.Round(2).Float64()
	return f
}

func StatusOf(pending float64) Status {
	if pending > 0 {
		return StatusActive
	}
	return StatusClosed
}

// Overdue reports whether the loan's term has elapsed. Date-granular, UTC.
func Overdue(loanDate time.Time, tenureMonths int, now time.Time) bool {
	due := loanDate.UTC().AddDate(0, tenureMonths, 0)
	return now.UTC().After(due)
}
