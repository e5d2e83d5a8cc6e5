package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// defaultPageSize is the number of resources returned when the limit
// query parameter is not set.
const defaultPageSize = 50

// stringFilter filters on a single text column. A non-empty value is a
// substring match, an empty value that was explicitly set in the query
// string matches only empty columns.
func stringFilter(query *gorm.DB, setFields []string, field, column, value string) *gorm.DB {
	if value != "" {
		return query.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", value))
	}

	if slices.Contains(setFields, field) {
		return query.Where(fmt.Sprintf("%s = ''", column))
	}

	return query
}

// searchFilter matches a search term as substring in any of the columns.
func searchFilter(db, query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" {
		return query
	}

	match := db.Where(fmt.Sprintf("%s LIKE ?", columns[0]), fmt.Sprintf("%%%s%%", search))
	for _, column := range columns[1:] {
		match = match.Or(db.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", search)))
	}

	return query.Where(match)
}

// paginate applies offset and limit to the query and returns the
// effective limit for the response's pagination block.
func paginate(query *gorm.DB, setFields []string, offset uint, limit int) (*gorm.DB, int) {
	query = query.Offset(int(offset))

	if !slices.Contains(setFields, "Limit") {
		limit = defaultPageSize
	}
	query = query.Limit(limit)

	return query, limit
}
