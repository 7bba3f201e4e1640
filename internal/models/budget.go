package models

import (
	"time"

	"github.com/cofrinho-app/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Budget is the amount planned for a category in a month. For savings
// categories, it is the amount to set aside.
//
// There is at most one budget per user, category and month.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID   `gorm:"type:uuid;uniqueIndex:budget_user_category_month"`
	CategoryID uuid.UUID   `gorm:"type:uuid;uniqueIndex:budget_user_category_month"`
	Category   Category    `gorm:"constraint:OnDelete:RESTRICT"`
	Month      types.Month `gorm:"uniqueIndex:budget_user_category_month"`
	Amount     types.Money
}

// BeforeSave truncates the month and verifies the amount and that the
// category belongs to the user of the budget.
func (b *Budget) BeforeSave(tx *gorm.DB) error {
	if b.Month.IsZero() {
		return ErrBudgetMonthMissing
	}
	b.Month = types.MonthOf(time.Time(b.Month))

	if b.Amount.IsNegative() {
		return ErrBudgetAmountNegative
	}

	var category Category
	return tx.Where("id = ? AND user_id = ?", b.CategoryID, b.UserID).First(&category).Error
}
