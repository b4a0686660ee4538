package entity

// SearchField declares one searchable column of an entity. Fold columns are
// matched case-insensitively. CastText columns hold numeric identifiers that
// are compared as text, so a search for "12" matches id 123.
type SearchField struct {
	Column   string
	Fold     bool
	CastText bool
}

// SearchSpec is the static list of searchable fields for an entity type.
// Repositories declare one spec per entity; search input never contributes
// column names, only parameter values.
type SearchSpec struct {
	Fields []SearchField
}
