package aggregation_test

import (
	"context"
	"time"

	"github.com/cofrinho-app/backend/internal/aggregation"
	"github.com/cofrinho-app/backend/internal/models"
	"github.com/cofrinho-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	summary, err := aggregation.Summary(models.DB, suite.userID, asOf)
	require.Nil(suite.T(), err)
	suite.assertDecimal("0", summary.CurrentBalance)
	suite.assertDecimal("0", summary.TotalRevenue)
	suite.assertDecimal("0", summary.TotalExpense)
	suite.assertDecimal("0", summary.RevenueThisMonth)
	suite.assertDecimal("0", summary.ExpenseThisMonth)

	points, err := aggregation.BalanceEvolution(models.DB, suite.userID, asOf)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), points, aggregation.EvolutionDays)
	for _, p := range points {
		suite.assertDecimal("0", p.Balance, p.Date)
	}

	slices, err := aggregation.ExpenseByCategory(models.DB, suite.userID, asOf)
	require.Nil(suite.T(), err)
	assert.NotNil(suite.T(), slices)
	assert.Len(suite.T(), slices, 0)
}

func (suite *TestSuiteStandard) TestSummary() {
	account := suite.createTestAccount("1000")
	groceries := suite.createTestCategory("Groceries", models.CategoryTypeExpense)

	suite.createTestTransaction(account, &groceries, types.DateOf(asOf), "-200")

	summary, err := aggregation.Summary(models.DB, suite.userID, asOf)
	require.Nil(suite.T(), err)

	suite.assertDecimal("800", summary.CurrentBalance)
	suite.assertDecimal("0", summary.TotalRevenue)
	suite.assertDecimal("-200", summary.TotalExpense)
	suite.assertDecimal("0", summary.RevenueThisMonth)
	suite.assertDecimal("-200", summary.ExpenseThisMonth)
}

func (suite *TestSuiteStandard) TestSummaryMonthBoundaries() {
	checking := suite.createTestAccount("100.50")
	wallet := suite.createTestAccount("20")
	salary := suite.createTestCategory("Salary", models.CategoryTypeRevenue)
	rent := suite.createTestCategory("Rent", models.CategoryTypeExpense)
	reserve := suite.createTestCategory("Reserve", models.CategoryTypeSavings)

	suite.createTestTransaction(checking, &salary, types.NewDate(2025, 10, 31), "3000")
	suite.createTestTransaction(checking, &salary, types.NewDate(2025, 11, 1), "3000")
	suite.createTestTransaction(checking, &rent, types.NewDate(2025, 11, 30), "-1200")
	suite.createTestTransaction(checking, &rent, types.NewDate(2025, 12, 1), "-1200")
	suite.createTestTransaction(wallet, &reserve, types.NewDate(2025, 11, 10), "-500")
	suite.createTestTransaction(wallet, nil, types.NewDate(2025, 11, 11), "-15.25")

	summary, err := aggregation.Summary(models.DB, suite.userID, asOf)
	require.Nil(suite.T(), err)

	suite.assertDecimal("3205.25", summary.CurrentBalance)
	suite.assertDecimal("6000", summary.TotalRevenue)
	suite.assertDecimal("-2915.25", summary.TotalExpense)
	suite.assertDecimal("3000", summary.RevenueThisMonth)
	suite.assertDecimal("-1715.25", summary.ExpenseThisMonth)
}

// TestSummaryBalanceIdentity verifies that the current balance is the
// initial balances plus revenue plus expenses.
func (suite *TestSuiteStandard) TestSummaryBalanceIdentity() {
	account := suite.createTestAccount("250")
	other := suite.createTestAccount("-50")
	expense := suite.createTestCategory("Misc", models.CategoryTypeExpense)
	savings := suite.createTestCategory("Reserve", models.CategoryTypeSavings)

	suite.createTestTransaction(account, &expense, types.NewDate(2024, 1, 1), "-10.10")
	suite.createTestTransaction(account, &expense, types.NewDate(2025, 3, 3), "42.42")
	suite.createTestTransaction(other, &savings, types.NewDate(2025, 11, 2), "-100")
	suite.createTestTransaction(other, &savings, types.NewDate(2025, 11, 3), "60")
	suite.createTestTransaction(other, nil, types.NewDate(2026, 2, 1), "7")

	summary, err := aggregation.Summary(models.DB, suite.userID, asOf)
	require.Nil(suite.T(), err)

	identity := summary.TotalRevenue.Add(summary.TotalExpense).Add(decimal.NewFromInt(200))
	suite.assertDecimal(identity.String(), summary.CurrentBalance)
	suite.assertDecimal("199.32", summary.CurrentBalance)
}

// TestSummaryPrecision verifies that amounts with more significant digits
// than a float64 holds are summed exactly.
func (suite *TestSuiteStandard) TestSummaryPrecision() {
	account := suite.createTestAccount("0")
	salary := suite.createTestCategory("Salary", models.CategoryTypeRevenue)

	for i := 0; i < 10; i++ {
		suite.createTestTransaction(account, &salary, types.NewDate(2025, 10, 1), "0.1")
	}
	suite.createTestTransaction(account, &salary, types.NewDate(2025, 10, 2), "123456789012.12345678")

	summary, err := aggregation.Summary(models.DB, suite.userID, asOf)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "123456789013.12345678", summary.CurrentBalance.String())
	assert.Equal(suite.T(), "123456789013.12345678", summary.TotalRevenue.String())

	balance, err := account.Balance(models.DB)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "123456789013.12345678", balance.String())
}

func (suite *TestSuiteStandard) TestSummaryOtherUsers() {
	account := suite.createTestAccount("1000")
	suite.createTestTransaction(account, nil, types.DateOf(asOf), "-10")

	summary, err := aggregation.Summary(models.DB, uuid.New(), asOf)
	require.Nil(suite.T(), err)
	suite.assertDecimal("0", summary.CurrentBalance)
	suite.assertDecimal("0", summary.TotalExpense)
}

func (suite *TestSuiteStandard) TestBalanceEvolution() {
	account := suite.createTestAccount("1000")
	category := suite.createTestCategory("Groceries", models.CategoryTypeExpense)

	// Before the window, counts into the starting balance
	suite.createTestTransaction(account, &category, types.NewDate(2025, 10, 1), "-100")

	// First day of the window
	suite.createTestTransaction(account, &category, types.NewDate(2025, 10, 17), "-50")

	// Two transactions on the same day
	suite.createTestTransaction(account, &category, types.NewDate(2025, 11, 2), "-20")
	suite.createTestTransaction(account, nil, types.NewDate(2025, 11, 2), "300")

	// Today
	suite.createTestTransaction(account, &category, types.DateOf(asOf), "-30")

	// In the future, not included
	suite.createTestTransaction(account, &category, types.NewDate(2025, 11, 16), "-1000")

	points, err := aggregation.BalanceEvolution(models.DB, suite.userID, asOf)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), points, aggregation.EvolutionDays)

	assert.Equal(suite.T(), "2025-10-17", points[0].Date.String())
	assert.Equal(suite.T(), "2025-11-15", points[len(points)-1].Date.String())

	tests := map[string]string{
		"2025-10-17": "850",
		"2025-11-01": "850",
		"2025-11-02": "1130",
		"2025-11-14": "1130",
		"2025-11-15": "1100",
	}

	for _, p := range points {
		if expected, ok := tests[p.Date.String()]; ok {
			suite.assertDecimal(expected, p.Balance, p.Date)
		}
	}

	for i := 1; i < len(points); i++ {
		assert.Equal(suite.T(), points[i-1].Date.AddDays(1).String(), points[i].Date.String(), "days must be consecutive")
	}
}

// TestBalanceEvolutionMatchesSummary verifies that the last point equals
// the current balance when no transactions are dated in the future.
func (suite *TestSuiteStandard) TestBalanceEvolutionMatchesSummary() {
	account := suite.createTestAccount("512.34")
	salary := suite.createTestCategory("Salary", models.CategoryTypeRevenue)
	reserve := suite.createTestCategory("Reserve", models.CategoryTypeSavings)

	suite.createTestTransaction(account, &salary, types.NewDate(2025, 9, 5), "1500")
	suite.createTestTransaction(account, &reserve, types.NewDate(2025, 11, 5), "-250")
	suite.createTestTransaction(account, nil, types.NewDate(2025, 11, 15), "-12.34")

	summary, err := aggregation.Summary(models.DB, suite.userID, asOf)
	require.Nil(suite.T(), err)

	points, err := aggregation.BalanceEvolution(models.DB, suite.userID, asOf)
	require.Nil(suite.T(), err)

	suite.assertDecimal(summary.CurrentBalance.String(), points[len(points)-1].Balance)
	suite.assertDecimal("1750", summary.CurrentBalance)
}

// TestBalanceEvolutionTimeOfDay verifies that the time of day of asOf
// does not change the window.
func (suite *TestSuiteStandard) TestBalanceEvolutionTimeOfDay() {
	account := suite.createTestAccount("0")
	suite.createTestTransaction(account, nil, types.NewDate(2025, 11, 15), "10")

	for _, at := range []time.Time{
		time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 11, 15, 23, 59, 59, 0, time.UTC),
	} {
		points, err := aggregation.BalanceEvolution(models.DB, suite.userID, at)
		require.Nil(suite.T(), err)
		require.Len(suite.T(), points, aggregation.EvolutionDays)

		assert.Equal(suite.T(), "2025-11-15", points[len(points)-1].Date.String())
		suite.assertDecimal("10", points[len(points)-1].Balance)
		suite.assertDecimal("0", points[len(points)-2].Balance)
	}
}

func (suite *TestSuiteStandard) TestBalanceEvolutionAcrossYear() {
	suite.createTestAccount("5")

	points, err := aggregation.BalanceEvolution(models.DB, suite.userID, time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), points, aggregation.EvolutionDays)

	assert.Equal(suite.T(), "2025-12-12", points[0].Date.String())
	assert.Equal(suite.T(), "12/12", points[0].Date.Label())
	assert.Equal(suite.T(), "2026-01-10", points[len(points)-1].Date.String())
	suite.assertDecimal("5", points[0].Balance)
}

func (suite *TestSuiteStandard) TestExpenseByCategory() {
	account := suite.createTestAccount("0")
	groceries := suite.createTestCategory("Groceries", models.CategoryTypeExpense)
	rent := suite.createTestCategory("Rent", models.CategoryTypeExpense)
	dining := suite.createTestCategory("Dining", models.CategoryTypeExpense)
	bakery := suite.createTestCategory("Bakery", models.CategoryTypeExpense)
	reserve := suite.createTestCategory("Reserve", models.CategoryTypeSavings)
	salary := suite.createTestCategory("Salary", models.CategoryTypeRevenue)
	gifts := suite.createTestCategory("Gifts", models.CategoryTypeExpense)

	suite.createTestTransaction(account, &groceries, types.NewDate(2025, 11, 1), "-100")
	suite.createTestTransaction(account, &groceries, types.NewDate(2025, 11, 30), "-50")
	suite.createTestTransaction(account, &rent, types.NewDate(2025, 11, 5), "-1200")
	suite.createTestTransaction(account, &dining, types.NewDate(2025, 11, 6), "-40")
	suite.createTestTransaction(account, &bakery, types.NewDate(2025, 11, 7), "-40")
	suite.createTestTransaction(account, &reserve, types.NewDate(2025, 11, 8), "-300")

	// Inflows in expense categories do not offset expenses
	suite.createTestTransaction(account, &groceries, types.NewDate(2025, 11, 9), "30")

	// Not included: revenue, only refunds, other months, uncategorized
	suite.createTestTransaction(account, &salary, types.NewDate(2025, 11, 5), "5000")
	suite.createTestTransaction(account, &gifts, types.NewDate(2025, 11, 5), "25")
	suite.createTestTransaction(account, &rent, types.NewDate(2025, 10, 31), "-1200")
	suite.createTestTransaction(account, &rent, types.NewDate(2025, 12, 1), "-1200")
	suite.createTestTransaction(account, nil, types.NewDate(2025, 11, 10), "-999")

	result, err := aggregation.ExpenseByCategory(models.DB, suite.userID, asOf)
	require.Nil(suite.T(), err)

	var names []string
	for _, s := range result {
		names = append(names, s.Name)
	}
	assert.Equal(suite.T(), []string{"Rent", "Reserve", "Groceries", "Bakery", "Dining"}, names)

	suite.assertDecimal("1200", result[0].Value)
	assert.Equal(suite.T(), rent.ID, result[0].CategoryID)
	suite.assertDecimal("300", result[1].Value)
	suite.assertDecimal("150", result[2].Value)
	suite.assertDecimal("40", result[3].Value)
	suite.assertDecimal("40", result[4].Value)

	for _, s := range result {
		assert.True(suite.T(), s.Value.IsPositive(), "slice %s has value %s", s.Name, s.Value)
	}
}

func (suite *TestSuiteStandard) TestOverview() {
	account := suite.createTestAccount("1000")
	groceries := suite.createTestCategory("Groceries", models.CategoryTypeExpense)
	suite.createTestTransaction(account, &groceries, types.DateOf(asOf), "-200")

	overview, err := aggregation.Overview(models.DB, suite.userID, asOf)
	require.Nil(suite.T(), err)

	suite.assertDecimal("800", overview.Summary.CurrentBalance)
	require.Len(suite.T(), overview.BalanceEvolution, aggregation.EvolutionDays)
	suite.assertDecimal("800", overview.BalanceEvolution[aggregation.EvolutionDays-1].Balance)
	suite.assertDecimal("1000", overview.BalanceEvolution[aggregation.EvolutionDays-2].Balance)
	require.Len(suite.T(), overview.ExpenseByCategory, 1)
	suite.assertDecimal("200", overview.ExpenseByCategory[0].Value)
}

func (suite *TestSuiteStandard) TestOverviewCanceledContext() {
	suite.createTestAccount("1000")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := aggregation.Overview(models.DB.WithContext(ctx), suite.userID, asOf)
	assert.NotNil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestDashboardDBClosed() {
	suite.CloseDB()

	_, err := aggregation.Summary(models.DB, suite.userID, asOf)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)

	_, err = aggregation.BalanceEvolution(models.DB, suite.userID, asOf)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)

	_, err = aggregation.ExpenseByCategory(models.DB, suite.userID, asOf)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)

	_, err = aggregation.Overview(models.DB, suite.userID, asOf)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
