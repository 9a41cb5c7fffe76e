package utils

import (
	"strings"

	"gorm.io/gorm"
)

// SearchScope matches term case-insensitively as a substring of any of the
// given column expressions. Columns must be trusted SQL, never user input.
func SearchScope(term string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		clauses := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		for _, col := range columns {
			clauses = append(clauses, "LOWER("+col+") LIKE ? ESCAPE '\\'")
			args = append(args, pattern)
		}
		return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// PickFields copies the allowed keys of input into a new map suitable for
// gorm's Updates. Unknown keys are dropped.
func PickFields(input map[string]interface{}, allowed ...string) map[string]interface{} {
	updates := make(map[string]interface{})
	for _, key := range allowed {
		if v, ok := input[key]; ok {
			updates[key] = v
		}
	}
	return updates
}
