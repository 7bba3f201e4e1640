package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters filters by the name and searches the search columns.
//
// If the name parameter is set but empty, resources with an empty name
// match.
func stringFilters(db, query *gorm.DB, setFields []string, name, search string, searchColumns ...string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if search != "" && len(searchColumns) > 0 {
		condition := db.Where(fmt.Sprintf("%s LIKE ?", searchColumns[0]), fmt.Sprintf("%%%s%%", search))
		for _, column := range searchColumns[1:] {
			condition = condition.Or(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", search))
		}

		query = query.Where(condition)
	}

	return query
}

// limit returns the limit for a list request. It defaults to defaultLimit.
func limit(setFields []string, requested int) int {
	if slices.Contains(setFields, "Limit") {
		return requested
	}
	return defaultLimit
}
