package models

// Quiver represents a named collection of arrows
// Maps to: quiver table
type Quiver struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
