package models

import (
	"strings"

	"github.com/cofrinho-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account is a place money is held, e.g. a checking account or a wallet.
type Account struct {
	DefaultModel
	UserID         uuid.UUID   `gorm:"type:uuid;uniqueIndex:account_user_name"`
	Name           string      `gorm:"uniqueIndex:account_user_name"`
	Kind           string      // Free text, e.g. "checking" or "wallet"
	Note           string
	InitialBalance types.Money // Balance before the first transaction
}

func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Kind = strings.TrimSpace(a.Kind)
	a.Note = strings.TrimSpace(a.Note)
	return nil
}

// Balance returns the initial balance plus the sum of all transactions of the account.
func (a Account) Balance(db *gorm.DB) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	err := db.
		Model(&Transaction{}).
		Where(&Transaction{AccountID: a.ID}).
		Pluck("amount", &amounts).Error
	if err != nil {
		return decimal.Zero, err
	}

	return a.InitialBalance.Add(decimal.Sum(decimal.Zero, amounts...)), nil
}
