package aggregation

import (
	"github.com/cofrinho-app/backend/internal/models"
	"github.com/cofrinho-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// BudgetProgress is a budget together with the amount spent, or for
// savings categories set aside, in its category and month.
type BudgetProgress struct {
	BudgetID     uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	CategoryIcon string
	CategoryType models.CategoryType
	Month        types.Month
	Budgeted     decimal.Decimal
	Spent        decimal.Decimal // Never negative
}

// Remaining is the budgeted amount minus the spent amount. It is negative
// when the budget is exceeded.
func (p BudgetProgress) Remaining() decimal.Decimal {
	return p.Budgeted.Sub(p.Spent)
}

// Percentage is the spent amount in percent of the budgeted amount,
// rounded to two decimal places. It is zero for a zero budget.
func (p BudgetProgress) Percentage() decimal.Decimal {
	if p.Budgeted.IsZero() {
		return decimal.Zero
	}

	return p.Spent.Div(p.Budgeted).Mul(decimal.NewFromInt(100)).Round(2)
}

type budgetRow struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	CategoryIcon string
	CategoryType models.CategoryType
	Month        types.Month
	Amount       decimal.Decimal
}

// spendingKey identifies the spending of a category in a month.
type spendingKey struct {
	CategoryID uuid.UUID
	Month      string
}

// BudgetProgresses returns the progress of all budgets of the user.
//
// Budgets are ordered by category type descending, which puts savings
// goals first, then by month descending and category name ascending.
func BudgetProgresses(db *gorm.DB, userID uuid.UUID) ([]BudgetProgress, error) {
	var budgets []budgetRow
	err := db.
		Table("budgets").
		Select("budgets.id, budgets.category_id, categories.name AS category_name, categories.icon AS category_icon, categories.type AS category_type, budgets.month, budgets.amount").
		Joins("JOIN categories ON categories.id = budgets.category_id").
		Where("budgets.user_id = ?", userID).
		Order("categories.type DESC, budgets.month DESC, categories.name ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	progress := make([]BudgetProgress, 0, len(budgets))
	if len(budgets) == 0 {
		return progress, nil
	}

	// Only transactions in budgeted categories and in the range of
	// budgeted months can count towards a budget
	var categories []uuid.UUID
	first, last := budgets[0].Month, budgets[0].Month
	for _, b := range budgets {
		if !slices.Contains(categories, b.CategoryID) {
			categories = append(categories, b.CategoryID)
		}

		if b.Month.Before(first) {
			first = b.Month
		}

		if b.Month.After(last) {
			last = b.Month
		}
	}

	rows, err := movements(db, userID, categorized(categories...), between(first.FirstDay(), last.AddDate(0, 1).FirstDay()))
	if err != nil {
		return nil, err
	}

	spent := make(map[spendingKey]decimal.Decimal)
	for _, m := range rows {
		key := spendingKey{CategoryID: *m.CategoryID, Month: m.Date.Month().String()}
		spent[key] = spent[key].Add(m.classify().Spent())
	}

	for _, b := range budgets {
		progress = append(progress, BudgetProgress{
			BudgetID:     b.ID,
			CategoryID:   b.CategoryID,
			CategoryName: b.CategoryName,
			CategoryIcon: b.CategoryIcon,
			CategoryType: b.CategoryType,
			Month:        b.Month,
			Budgeted:     b.Amount,
			Spent:        spent[spendingKey{CategoryID: b.CategoryID, Month: b.Month.String()}],
		})
	}

	return progress, nil
}
