package types

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Money is a decimal amount as it is persisted.
//
// SQLite gives DECIMAL columns NUMERIC affinity and stores such values as
// REAL, which keeps only 15 significant digits. Money is therefore stored
// as TEXT on SQLite and as NUMERIC(20,8) on PostgreSQL.
type Money struct {
	decimal.Decimal
}

// NewMoney returns a new Money.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (Money) GormDataType() string {
	return "decimal"
}

func (Money) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "sqlite":
		return "TEXT"
	case "postgres":
		return "NUMERIC(20,8)"
	}
	return ""
}
