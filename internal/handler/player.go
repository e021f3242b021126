package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/msomdec/pitchside/internal/domain"
	"github.com/msomdec/pitchside/internal/service"
)

// PlayerHandler handles player CRUD requests.
type PlayerHandler struct {
	players *service.PlayerService
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(players *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{players: players}
}

// HandleList returns all players, newest first.
// GET /api/players
func (h *PlayerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	players, err := h.players.List(r.Context())
	if err != nil {
		writeDomainError(w, "list players", err)
		return
	}
	writeJSON(w, http.StatusOK, toPlayerDTOs(players))
}

// HandleCreate stores a new player and echoes it back with its generated id.
// POST /api/players (admin)
func (h *PlayerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name"`
		Team         string `json:"team"`
		Role         string `json:"role"`
		BattingStyle string `json:"battingStyle"`
		BowlingStyle string `json:"bowlingStyle"`
		Runs         int    `json:"runs"`
		Wickets      int    `json:"wickets"`
		Matches      int    `json:"matches"`
		Image        string `json:"image"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	player, err := h.players.Create(r.Context(), &domain.Player{
		Name:         req.Name,
		Team:         req.Team,
		Role:         req.Role,
		BattingStyle: req.BattingStyle,
		BowlingStyle: req.BowlingStyle,
		Runs:         req.Runs,
		Wickets:      req.Wickets,
		Matches:      req.Matches,
		Image:        req.Image,
	})
	if err != nil {
		writeDomainError(w, "create player", err)
		return
	}

	writeJSON(w, http.StatusCreated, toPlayerDTO(player))
}

// HandleUpdate applies a partial update to the player with the given id.
// Absent fields keep their stored values.
// PUT /api/players/{id} (admin)
func (h *PlayerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         *string `json:"name"`
		Team         *string `json:"team"`
		Role         *string `json:"role"`
		BattingStyle *string `json:"battingStyle"`
		BowlingStyle *string `json:"bowlingStyle"`
		Runs         *int    `json:"runs"`
		Wickets      *int    `json:"wickets"`
		Matches      *int    `json:"matches"`
		Image        *string `json:"image"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	player, err := h.players.Update(r.Context(), chi.URLParam(r, "id"), service.PlayerPatch{
		Name:         req.Name,
		Team:         req.Team,
		Role:         req.Role,
		BattingStyle: req.BattingStyle,
		BowlingStyle: req.BowlingStyle,
		Runs:         req.Runs,
		Wickets:      req.Wickets,
		Matches:      req.Matches,
		Image:        req.Image,
	})
	if err != nil {
		writeDomainError(w, "update player", err)
		return
	}

	writeJSON(w, http.StatusOK, toPlayerDTO(player))
}

// HandleDelete removes the player with the given id.
// DELETE /api/players/{id} (admin)
func (h *PlayerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.players.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, "delete player", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Player deleted successfully"})
}
