package aggregation

import (
	"strings"
	"time"

	"github.com/cofrinho-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// EvolutionDays is the number of days in the balance evolution, today included.
const EvolutionDays = 30

// DashboardSummary contains the current balance and the income and expense
// totals, all time and for the current month. Expenses are negative.
type DashboardSummary struct {
	CurrentBalance   decimal.Decimal
	TotalRevenue     decimal.Decimal
	TotalExpense     decimal.Decimal
	RevenueThisMonth decimal.Decimal
	ExpenseThisMonth decimal.Decimal
}

// BalancePoint is the balance at the end of a day.
type BalancePoint struct {
	Date    types.Date
	Balance decimal.Decimal
}

// ExpenseSlice is the expense magnitude of a category in a month.
type ExpenseSlice struct {
	CategoryID uuid.UUID
	Name       string
	Value      decimal.Decimal
}

// DashboardOverview bundles all dashboard figures.
type DashboardOverview struct {
	Summary           DashboardSummary
	BalanceEvolution  []BalancePoint
	ExpenseByCategory []ExpenseSlice
}

// Summary computes the DashboardSummary. The current month is the month asOf is in.
func Summary(db *gorm.DB, userID uuid.UUID, asOf time.Time) (DashboardSummary, error) {
	balance, err := initialBalance(db, userID)
	if err != nil {
		return DashboardSummary{}, err
	}

	rows, err := movements(db, userID)
	if err != nil {
		return DashboardSummary{}, err
	}

	month := types.DateOf(asOf).Month()
	s := DashboardSummary{
		CurrentBalance:   balance,
		TotalRevenue:     decimal.Zero,
		TotalExpense:     decimal.Zero,
		RevenueThisMonth: decimal.Zero,
		ExpenseThisMonth: decimal.Zero,
	}

	for _, m := range rows {
		c := m.classify()
		s.CurrentBalance = s.CurrentBalance.Add(m.Amount)
		s.TotalRevenue = s.TotalRevenue.Add(c.Revenue())
		s.TotalExpense = s.TotalExpense.Add(c.Expense())

		if month.Contains(m.Date) {
			s.RevenueThisMonth = s.RevenueThisMonth.Add(c.Revenue())
			s.ExpenseThisMonth = s.ExpenseThisMonth.Add(c.Expense())
		}
	}

	return s, nil
}

// BalanceEvolution returns the balance at the end of each of the
// EvolutionDays days up to and including the day asOf is on, oldest first.
//
// Transactions dated after that day are not included.
func BalanceEvolution(db *gorm.DB, userID uuid.UUID, asOf time.Time) ([]BalancePoint, error) {
	today := types.DateOf(asOf)
	start := today.AddDays(-(EvolutionDays - 1))

	balance, err := initialBalance(db, userID)
	if err != nil {
		return nil, err
	}

	rows, err := movements(db, userID, before(today.AddDays(1)))
	if err != nil {
		return nil, err
	}

	daily := make(map[string]decimal.Decimal, EvolutionDays)
	for _, m := range rows {
		if m.Date.Before(start) {
			balance = balance.Add(m.Amount)
			continue
		}

		daily[m.Date.String()] = daily[m.Date.String()].Add(m.Amount)
	}

	points := make([]BalancePoint, 0, EvolutionDays)
	for day := start; !day.After(today); day = day.AddDays(1) {
		balance = balance.Add(daily[day.String()])
		points = append(points, BalancePoint{Date: day, Balance: balance})
	}

	return points, nil
}

// ExpenseByCategory returns the expense magnitude per category for the
// month asOf is in, largest first. Categories without expenses are omitted,
// uncategorized transactions are not attributed.
func ExpenseByCategory(db *gorm.DB, userID uuid.UUID, asOf time.Time) ([]ExpenseSlice, error) {
	month := types.DateOf(asOf).Month()

	rows, err := movements(db, userID, categorized(), between(month.FirstDay(), month.AddDate(0, 1).FirstDay()))
	if err != nil {
		return nil, err
	}

	result := make([]ExpenseSlice, 0)
	index := make(map[uuid.UUID]int)
	for _, m := range rows {
		expense := m.classify().Expense().Abs()
		if expense.IsZero() {
			continue
		}

		i, ok := index[*m.CategoryID]
		if !ok {
			i = len(result)
			index[*m.CategoryID] = i
			result = append(result, ExpenseSlice{CategoryID: *m.CategoryID, Name: m.CategoryName, Value: decimal.Zero})
		}

		result[i].Value = result[i].Value.Add(expense)
	}

	sortExpenseSlices(result)
	return result, nil
}

func sortExpenseSlices(s []ExpenseSlice) {
	slices.SortFunc(s, func(a, b ExpenseSlice) int {
		if c := b.Value.Cmp(a.Value); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
}

// Overview computes all dashboard figures concurrently on the context of db.
// If any of them fails, the error is returned and no figures.
func Overview(db *gorm.DB, userID uuid.UUID, asOf time.Time) (DashboardOverview, error) {
	g, ctx := errgroup.WithContext(db.Statement.Context)
	db = db.WithContext(ctx)

	var o DashboardOverview

	g.Go(func() (err error) {
		o.Summary, err = Summary(db, userID, asOf)
		return
	})

	g.Go(func() (err error) {
		o.BalanceEvolution, err = BalanceEvolution(db, userID, asOf)
		return
	})

	g.Go(func() (err error) {
		o.ExpenseByCategory, err = ExpenseByCategory(db, userID, asOf)
		return
	})

	if err := g.Wait(); err != nil {
		return DashboardOverview{}, err
	}

	return o, nil
}
