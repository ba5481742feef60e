package models

// RelationType represents a type of relationship between issues
// Relation types are stored in the database and may be extended by administrators
type RelationType struct {
	ID   int
	Name string
}

// Relation keys used on issue activity records
const (
	RelationDuplicateOf = "duplicate_of"
	RelationRelatedTo   = "related_to"
	RelationNotBefore   = "not_before"
	RelationPRFor       = "pr_for"
)
