package models

import (
	"strings"
	"time"

	"github.com/cofrinho-app/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction is a movement of money on an account.
//
// Positive amounts are inflows, negative amounts outflows. Savings
// contributions are stored negative.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID  `gorm:"type:uuid;index"`
	AccountID   uuid.UUID  `gorm:"type:uuid;index"`
	Account     Account    `gorm:"constraint:OnDelete:CASCADE"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Category    *Category  `gorm:"constraint:OnDelete:SET NULL"`
	Date        types.Date `gorm:"index"`
	Amount      types.Money
	Description string
}

// BeforeSave
//   - trims whitespace from the description
//   - defaults the date to today
//   - verifies that account and category belong to the user of the transaction
func (t *Transaction) BeforeSave(tx *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)

	// Ensure that the Category ID is nil and not a pointer to a nil UUID
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.Date.IsZero() {
		t.Date = types.DateOf(time.Now())
	}

	var account Account
	err = tx.Where("id = ? AND user_id = ?", t.AccountID, t.UserID).First(&account).Error
	if err != nil {
		return err
	}

	if t.CategoryID != nil {
		var category Category
		err = tx.Where("id = ? AND user_id = ?", *t.CategoryID, t.UserID).First(&category).Error
		if err != nil {
			return err
		}
	}

	return nil
}
