package models

// ArrowScore represents a numeric measurement attached to one arrow
// Maps to: arrow_score table
type ArrowScore struct {
	ID      int64   `db:"id" json:"id"`
	ArrowID int64   `db:"arrow_id" json:"arrow_id"`
	Score   float64 `db:"score" json:"score"`
}
