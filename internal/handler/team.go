package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/msomdec/pitchside/internal/domain"
	"github.com/msomdec/pitchside/internal/service"
)

// TeamHandler handles team CRUD requests.
type TeamHandler struct {
	teams *service.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teams *service.TeamService) *TeamHandler {
	return &TeamHandler{teams: teams}
}

// HandleList returns all teams ordered by ranking.
// GET /api/teams
func (h *TeamHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teams.List(r.Context())
	if err != nil {
		writeDomainError(w, "list teams", err)
		return
	}
	writeJSON(w, http.StatusOK, toTeamDTOs(teams))
}

// HandleCreate stores a new team and echoes it back with its generated id.
// POST /api/teams (admin)
func (h *TeamHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Ranking int    `json:"ranking"`
		Points  int    `json:"points"`
		Wins    int    `json:"wins"`
		Losses  int    `json:"losses"`
		Flag    string `json:"flag"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	team, err := h.teams.Create(r.Context(), &domain.Team{
		Name:    req.Name,
		Ranking: req.Ranking,
		Points:  req.Points,
		Wins:    req.Wins,
		Losses:  req.Losses,
		Flag:    req.Flag,
	})
	if err != nil {
		writeDomainError(w, "create team", err)
		return
	}

	writeJSON(w, http.StatusCreated, toTeamDTO(team))
}

// HandleUpdate applies a partial update to the team with the given id.
// PUT /api/teams/{id} (admin)
func (h *TeamHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    *string `json:"name"`
		Ranking *int    `json:"ranking"`
		Points  *int    `json:"points"`
		Wins    *int    `json:"wins"`
		Losses  *int    `json:"losses"`
		Flag    *string `json:"flag"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	team, err := h.teams.Update(r.Context(), chi.URLParam(r, "id"), service.TeamPatch{
		Name:    req.Name,
		Ranking: req.Ranking,
		Points:  req.Points,
		Wins:    req.Wins,
		Losses:  req.Losses,
		Flag:    req.Flag,
	})
	if err != nil {
		writeDomainError(w, "update team", err)
		return
	}

	writeJSON(w, http.StatusOK, toTeamDTO(team))
}

// HandleDelete removes the team with the given id.
// DELETE /api/teams/{id} (admin)
func (h *TeamHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.teams.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, "delete team", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Team deleted successfully"})
}
