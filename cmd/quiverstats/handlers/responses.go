package handlers

import (
	"github.com/quiverstats/backend/cmd/quiverstats/models"
)

// Response shapes mirror the published API contract field for field, so
// model changes never leak extra keys to consumers.

type quiverResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type arrowRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type quiverDetailResponse struct {
	ID     int64      `json:"id"`
	Name   string     `json:"name"`
	Arrows []arrowRef `json:"arrows"`
}

type arrowResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	QuiverID int64  `json:"quiver_id"`
}

type scoreRef struct {
	ID    int64   `json:"id"`
	Score float64 `json:"score"`
}

type scoreResponse struct {
	ID      int64   `json:"id"`
	ArrowID int64   `json:"arrow_id"`
	Score   float64 `json:"score"`
}

func newQuiverResponse(q *models.Quiver) quiverResponse {
	return quiverResponse{ID: q.ID, Name: q.Name}
}

func newQuiverListResponse(quivers []models.Quiver) []quiverResponse {
	out := make([]quiverResponse, 0, len(quivers))
	for _, q := range quivers {
		out = append(out, quiverResponse{ID: q.ID, Name: q.Name})
	}
	return out
}

func newQuiverDetailResponse(q *models.Quiver, arrows []models.Arrow) quiverDetailResponse {
	refs := make([]arrowRef, 0, len(arrows))
	for _, a := range arrows {
		refs = append(refs, arrowRef{ID: a.ID, Name: a.Name})
	}
	return quiverDetailResponse{ID: q.ID, Name: q.Name, Arrows: refs}
}

func newArrowResponse(a *models.Arrow) arrowResponse {
	return arrowResponse{ID: a.ID, Name: a.Name, QuiverID: a.QuiverID}
}

func newArrowListResponse(arrows []models.Arrow) []arrowResponse {
	out := make([]arrowResponse, 0, len(arrows))
	for _, a := range arrows {
		out = append(out, arrowResponse{ID: a.ID, Name: a.Name, QuiverID: a.QuiverID})
	}
	return out
}

func newScoreResponse(s *models.ArrowScore) scoreResponse {
	return scoreResponse{ID: s.ID, ArrowID: s.ArrowID, Score: s.Score}
}

func newScoreListResponse(scores []models.ArrowScore) []scoreRef {
	out := make([]scoreRef, 0, len(scores))
	for _, s := range scores {
		out = append(out, scoreRef{ID: s.ID, Score: s.Score})
	}
	return out
}
