package entity

// StatCount is a single group-by bucket: a group name and its row count.
type StatCount struct {
	Name  string
	Value int64
}
