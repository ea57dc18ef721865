package domain

import "strings"

// DefaultPageSize applies when a listing request does not name one.
const DefaultPageSize = 20

// ConstraintField names a filterable item attribute.
type ConstraintField string

const (
	FieldID       ConstraintField = "id"
	FieldStatus   ConstraintField = "status"
	FieldCategory ConstraintField = "category"
	FieldTag      ConstraintField = "tag"
	FieldOwner    ConstraintField = "owner"
	// FieldKeyword matches the value as a case-insensitive substring of
	// title or description; every other field is an equality constraint.
	FieldKeyword ConstraintField = "keyword"
)

// Constraint is one typed predicate clause. The ordered constraint list is
// the storage-independent query form; adapters translate it to their native
// query language, and in-memory fakes can evaluate it directly.
type Constraint struct {
	Field ConstraintField
	Value any
}

// ItemFilter collects the optional listing criteria of one request.
// A nil pointer means "no constraint on that field", never "match empty".
type ItemFilter struct {
	ID       *int64
	Status   *ItemStatus
	Category *ItemCategory
	Tag      *ItemTag
	OwnerID  *int64
	Keyword  string
	Page     int
	PageSize int
}

// Normalized returns a copy with pagination bounds applied: page >= 0,
// page size > 0 (default when unset), keyword trimmed.
func (f ItemFilter) Normalized() ItemFilter {
	if f.Page < 0 {
		f.Page = 0
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	f.Keyword = strings.TrimSpace(f.Keyword)
	return f
}

// Constraints returns the conjunctive predicate as an ordered clause list.
// Absent criteria contribute nothing.
func (f ItemFilter) Constraints() []Constraint {
	f = f.Normalized()
	constraints := make([]Constraint, 0, 6)
	if f.ID != nil {
		constraints = append(constraints, Constraint{Field: FieldID, Value: *f.ID})
	}
	if f.Status != nil {
		constraints = append(constraints, Constraint{Field: FieldStatus, Value: *f.Status})
	}
	if f.Category != nil {
		constraints = append(constraints, Constraint{Field: FieldCategory, Value: *f.Category})
	}
	if f.Tag != nil {
		constraints = append(constraints, Constraint{Field: FieldTag, Value: *f.Tag})
	}
	if f.OwnerID != nil {
		constraints = append(constraints, Constraint{Field: FieldOwner, Value: *f.OwnerID})
	}
	if f.Keyword != "" {
		constraints = append(constraints, Constraint{Field: FieldKeyword, Value: f.Keyword})
	}
	return constraints
}

// Matches evaluates the constraint list against one item. The storage layer
// does not use this; it exists so the predicate semantics are testable and
// usable without a live database.
func (f ItemFilter) Matches(item Item) bool {
	for _, c := range f.Constraints() {
		switch c.Field {
		case FieldID:
			if item.ID != c.Value.(int64) {
				return false
			}
		case FieldStatus:
			if item.Status != c.Value.(ItemStatus) {
				return false
			}
		case FieldCategory:
			if item.Category != c.Value.(ItemCategory) {
				return false
			}
		case FieldTag:
			if item.Tag != c.Value.(ItemTag) {
				return false
			}
		case FieldOwner:
			if item.OwnerID != c.Value.(int64) {
				return false
			}
		case FieldKeyword:
			keyword := strings.ToLower(c.Value.(string))
			title := strings.ToLower(item.Title)
			description := strings.ToLower(item.Description)
			if !strings.Contains(title, keyword) && !strings.Contains(description, keyword) {
				return false
			}
		}
	}
	return true
}
