package models

// Arrow represents a single arrow belonging to exactly one quiver
// Maps to: arrow table
type Arrow struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	QuiverID int64  `db:"quiver_id" json:"quiver_id"`
}
