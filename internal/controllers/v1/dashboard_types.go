package v1

import (
	"github.com/cofrinho-app/backend/internal/aggregation"
	"github.com/cofrinho-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardSummary contains the current balance and income and expense
// totals. Expenses are negative.
type DashboardSummary struct {
	CurrentBalance   decimal.Decimal `json:"currentBalance" example:"2735.17"`   // Initial balances of all accounts plus all transactions
	TotalRevenue     decimal.Decimal `json:"totalRevenue" example:"12000"`       // Sum of all inflows
	TotalExpense     decimal.Decimal `json:"totalExpense" example:"-9264.83"`    // Sum of all outflows
	RevenueThisMonth decimal.Decimal `json:"revenueThisMonth" example:"3000"`    // Sum of all inflows in the current month
	ExpenseThisMonth decimal.Decimal `json:"expenseThisMonth" example:"-812.40"` // Sum of all outflows in the current month
}

func newDashboardSummary(s aggregation.DashboardSummary) DashboardSummary {
	return DashboardSummary{
		CurrentBalance:   s.CurrentBalance,
		TotalRevenue:     s.TotalRevenue,
		TotalExpense:     s.TotalExpense,
		RevenueThisMonth: s.RevenueThisMonth,
		ExpenseThisMonth: s.ExpenseThisMonth,
	}
}

// BalancePoint is the balance at the end of a day.
type BalancePoint struct {
	Date    types.Date      `json:"date" example:"2025-11-15"` // The day
	Label   string          `json:"label" example:"15/11"`     // Short label for the day, DD/MM
	Balance decimal.Decimal `json:"balance" example:"2735.17"` // Balance at the end of the day
}

func newBalanceEvolution(points []aggregation.BalancePoint) []BalancePoint {
	data := make([]BalancePoint, 0, len(points))
	for _, p := range points {
		data = append(data, BalancePoint{
			Date:    p.Date,
			Label:   p.Date.Label(),
			Balance: p.Balance,
		})
	}
	return data
}

// ExpenseSlice is the amount spent in a category in the current month.
type ExpenseSlice struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category
	Name       string          `json:"name" example:"Alimentação"`                                // Name of the category
	Value      decimal.Decimal `json:"value" example:"812.40"`                                    // Amount spent, always positive
}

func newExpenseByCategory(slices []aggregation.ExpenseSlice) []ExpenseSlice {
	data := make([]ExpenseSlice, 0, len(slices))
	for _, s := range slices {
		data = append(data, ExpenseSlice{
			CategoryID: s.CategoryID,
			Name:       s.Name,
			Value:      s.Value,
		})
	}
	return data
}

// Dashboard contains all dashboard figures.
type Dashboard struct {
	Summary           DashboardSummary `json:"summary"`           // Balance and totals
	BalanceEvolution  []BalancePoint   `json:"balanceEvolution"`  // Balance for each of the last 30 days
	ExpenseByCategory []ExpenseSlice   `json:"expenseByCategory"` // Expenses per category in the current month
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                // All dashboard figures
	Error *string    `json:"error" example:"could not load data"` // The error, if any occurred
}

type DashboardSummaryResponse struct {
	Data  *DashboardSummary `json:"data"`                                // Balance and totals
	Error *string           `json:"error" example:"could not load data"` // The error, if any occurred
}

type BalanceEvolutionResponse struct {
	Data  []BalancePoint `json:"data"`                                // Balance for each of the last 30 days, oldest first
	Error *string        `json:"error" example:"could not load data"` // The error, if any occurred
}

type ExpenseByCategoryResponse struct {
	Data  []ExpenseSlice `json:"data"`                                // Expenses per category, largest first
	Error *string        `json:"error" example:"could not load data"` // The error, if any occurred
}
