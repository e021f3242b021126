package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/msomdec/pitchside/internal/domain"
	"github.com/msomdec/pitchside/internal/service"
)

// MatchHandler handles match CRUD requests.
type MatchHandler struct {
	matches *service.MatchService
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(matches *service.MatchService) *MatchHandler {
	return &MatchHandler{matches: matches}
}

// parseMatchDate accepts RFC3339 or bare YYYY-MM-DD dates from clients.
func parseMatchDate(raw string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// HandleList returns all matches ordered by fixture date.
// GET /api/matches
func (h *MatchHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matches.List(r.Context())
	if err != nil {
		writeDomainError(w, "list matches", err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchDTOs(matches))
}

// HandleCreate stores a new match and echoes it back with its generated id.
// POST /api/matches (admin)
func (h *MatchHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Team1  string `json:"team1"`
		Team2  string `json:"team2"`
		Venue  string `json:"venue"`
		Date   string `json:"date"`
		Time   string `json:"time"`
		Status string `json:"status"`
		Result string `json:"result"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	match := &domain.Match{
		Team1:  req.Team1,
		Team2:  req.Team2,
		Venue:  req.Venue,
		Time:   req.Time,
		Status: domain.MatchStatus(req.Status),
		Result: req.Result,
	}
	if req.Date != "" {
		date, ok := parseMatchDate(req.Date)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid input: date must be RFC3339 or YYYY-MM-DD")
			return
		}
		match.Date = date
	}

	created, err := h.matches.Create(r.Context(), match)
	if err != nil {
		writeDomainError(w, "create match", err)
		return
	}

	writeJSON(w, http.StatusCreated, toMatchDTO(created))
}

// HandleUpdate applies a partial update to the match with the given id.
// PUT /api/matches/{id} (admin)
func (h *MatchHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Team1  *string `json:"team1"`
		Team2  *string `json:"team2"`
		Venue  *string `json:"venue"`
		Date   *string `json:"date"`
		Time   *string `json:"time"`
		Status *string `json:"status"`
		Result *string `json:"result"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := service.MatchPatch{
		Team1:  req.Team1,
		Team2:  req.Team2,
		Venue:  req.Venue,
		Time:   req.Time,
		Result: req.Result,
	}
	if req.Date != nil {
		date, ok := parseMatchDate(*req.Date)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid input: date must be RFC3339 or YYYY-MM-DD")
			return
		}
		patch.Date = &date
	}
	if req.Status != nil {
		status := domain.MatchStatus(*req.Status)
		patch.Status = &status
	}

	match, err := h.matches.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeDomainError(w, "update match", err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchDTO(match))
}

// HandleDelete removes the match with the given id.
// DELETE /api/matches/{id} (admin)
func (h *MatchHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.matches.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, "delete match", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Match deleted successfully"})
}
