package specification

import "gorm.io/gorm"

// Specification defines the interface for query specifications.
// Apply renders the predicate for SQL stores; IsSatisfiedBy evaluates it against a row
// for stores that filter in process.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
	IsSatisfiedBy(row Row) bool
}

// Row is a record keyed by column name. Nullable columns hold nil when unset.
type Row map[string]interface{}

// SatisfiesAll reports whether row matches every spec.
func SatisfiesAll(row Row, specs ...Specification) bool {
	for _, spec := range specs {
		if !spec.IsSatisfiedBy(row) {
			return false
		}
	}
	return true
}
