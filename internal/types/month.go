// Package types implements calendar types used across the ledger.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Month is a calendar month, represented by 00:00 UTC on its first day.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" or "YYYY-MM-DD" string. The day, if any, is discarded.
func ParseMonth(s string) (Month, error) {
	layout := "2006-01"
	if len(s) == len("2006-01-02") {
		layout = "2006-01-02"
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
//
// Months are transmitted as their first day, "YYYY-MM-01".
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(m).Format(time.DateOnly) + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// "YYYY-MM", "YYYY-MM-DD" and RFC3339 are accepted. Everything but the
// year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	if len(value) > len(time.DateOnly) {
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return err
		}
		*m = MonthOf(t)
		return nil
	}

	month, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// UnmarshalParam implements gin's BindUnmarshaler for query parameters.
func (m *Month) UnmarshalParam(p string) error {
	if p == "" {
		*m = Month{}
		return nil
	}

	month, err := ParseMonth(p)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// Scan writes the value from the database.
//
// Values that are not on the first of the month are truncated.
func (m *Month) Scan(value any) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	if err != nil || !nullTime.Valid {
		*m = Month{}
		return err
	}

	*m = MonthOf(nullTime.Time.UTC())
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm the type.
func (Month) GormDataType() string {
	return "date"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// FirstDay returns the first Date of the month.
func (m Month) FirstDay() Date {
	return Date(time.Time(m))
}

// Contains reports whether the date is in the month.
func (m Month) Contains(d Date) bool {
	return d.Month().Equal(m)
}
