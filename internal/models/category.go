package models

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// CategoryType decides how transactions in a category are counted.
type CategoryType string

const (
	CategoryTypeRevenue CategoryType = "revenue"
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeSavings CategoryType = "savings"
)

// Valid reports if the type is one of the known category types.
func (t CategoryType) Valid() bool {
	switch t {
	case CategoryTypeRevenue, CategoryTypeExpense, CategoryTypeSavings:
		return true
	}
	return false
}

// Category groups transactions and is the unit budgets are set for.
type Category struct {
	DefaultModel
	UserID uuid.UUID    `gorm:"type:uuid;uniqueIndex:category_user_name"`
	Name   string       `gorm:"uniqueIndex:category_user_name"`
	Icon   string       // Icon reference for clients, may be empty
	Type   CategoryType `gorm:"index"`
}

// BeforeSave normalizes the name so that visually identical names
// collide on the unique index, and validates the type.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = norm.NFC.String(strings.TrimSpace(c.Name))
	c.Icon = strings.TrimSpace(c.Icon)

	if !c.Type.Valid() {
		return ErrCategoryTypeInvalid
	}

	return nil
}

// BeforeDelete rejects deletion of categories that transactions
// or budgets still reference.
func (c *Category) BeforeDelete(tx *gorm.DB) error {
	inUse, err := c.InUse(tx)
	if err != nil {
		return err
	}

	if inUse {
		return ErrCategoryInUse
	}

	return nil
}

// InUse reports if any transaction or budget references the category.
func (c Category) InUse(db *gorm.DB) (bool, error) {
	var transactions int64
	err := db.Model(&Transaction{}).Where("category_id = ?", c.ID).Count(&transactions).Error
	if err != nil {
		return false, err
	}

	if transactions > 0 {
		return true, nil
	}

	var budgets int64
	err = db.Model(&Budget{}).Where("category_id = ?", c.ID).Count(&budgets).Error
	if err != nil {
		return false, err
	}

	return budgets > 0, nil
}
