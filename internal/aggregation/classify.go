// Package aggregation computes the budget progress and dashboard figures
// from the ledger.
//
// All functions are read-only. Time-windowed figures take the reference
// time as an explicit argument; nothing in this package reads the clock.
package aggregation

import (
	"github.com/cofrinho-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Flow is the kind of money movement a transaction represents.
type Flow int

const (
	Inflow              Flow = iota // Money coming in, amount >= 0
	Outflow                         // Money spent, amount < 0
	SavingsContribution             // Money set aside in a savings category, any sign
)

func (f Flow) String() string {
	switch f {
	case Inflow:
		return "inflow"
	case Outflow:
		return "outflow"
	case SavingsContribution:
		return "savings contribution"
	}
	return "unknown"
}

// Classification is a transaction amount together with its Flow.
//
// All sign conventions of the aggregations are implemented by its methods.
type Classification struct {
	Flow   Flow
	Amount decimal.Decimal // signed, as stored
}

// Classify determines the Flow of a transaction. categoryType is empty for
// uncategorized transactions.
func Classify(amount decimal.Decimal, categoryType models.CategoryType) Classification {
	c := Classification{Amount: amount}

	switch {
	case categoryType == models.CategoryTypeSavings:
		c.Flow = SavingsContribution
	case amount.IsNegative():
		c.Flow = Outflow
	default:
		c.Flow = Inflow
	}

	return c
}

// Revenue is the amount if it is positive, zero otherwise.
func (c Classification) Revenue() decimal.Decimal {
	if c.Amount.IsPositive() {
		return c.Amount
	}
	return decimal.Zero
}

// Expense is the amount if it is negative, zero otherwise. The sign is kept.
func (c Classification) Expense() decimal.Decimal {
	if c.Amount.IsNegative() {
		return c.Amount
	}
	return decimal.Zero
}

// Spent is the magnitude counted as progress against a budget. Outflows
// and savings contributions count with their absolute value, inflows not at all.
func (c Classification) Spent() decimal.Decimal {
	if c.Flow == Inflow {
		return decimal.Zero
	}
	return c.Amount.Abs()
}
