package aggregation

import (
	"github.com/cofrinho-app/backend/internal/models"
	"github.com/cofrinho-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// movement is a transaction reduced to what the aggregations need.
type movement struct {
	Amount       decimal.Decimal
	Date         types.Date
	CategoryID   *uuid.UUID
	CategoryName string
	CategoryType models.CategoryType
}

func (m movement) classify() Classification {
	return Classify(m.Amount, m.CategoryType)
}

// movements returns the transactions of the user joined with their category.
func movements(db *gorm.DB, userID uuid.UUID, scopes ...func(*gorm.DB) *gorm.DB) ([]movement, error) {
	var rows []movement
	err := db.
		Table("transactions").
		Select("transactions.amount, transactions.date, transactions.category_id, COALESCE(categories.name, '') AS category_name, COALESCE(categories.type, '') AS category_type").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID).
		Scopes(scopes...).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// between limits movements to dates in [from, until).
func between(from, until types.Date) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("transactions.date >= ? AND transactions.date < ?", from, until)
	}
}

// before limits movements to dates before d.
func before(d types.Date) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("transactions.date < ?", d)
	}
}

// categorized limits movements to the given categories. Without
// arguments, all categorized transactions match.
func categorized(ids ...uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(ids) == 0 {
			return db.Where("transactions.category_id IS NOT NULL")
		}
		return db.Where("transactions.category_id IN ?", ids)
	}
}

// initialBalance is the sum of the initial balances of all accounts of the user.
func initialBalance(db *gorm.DB, userID uuid.UUID) (decimal.Decimal, error) {
	var balances []decimal.Decimal
	err := db.
		Model(&models.Account{}).
		Where("user_id = ?", userID).
		Pluck("initial_balance", &balances).Error
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.Sum(decimal.Zero, balances...), nil
}
