package handler

import (
	"time"

	"github.com/msomdec/pitchside/internal/domain"
)

// Resource records serialize with a Mongo-style "_id" key and RFC3339
// timestamps; the field names are part of the wire contract and must
// round-trip exactly.

// UserDTO is the JSON representation of a user in the login response.
type UserDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
}

// PlayerDTO is the JSON representation of a player record.
type PlayerDTO struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Team         string `json:"team"`
	Role         string `json:"role"`
	BattingStyle string `json:"battingStyle,omitempty"`
	BowlingStyle string `json:"bowlingStyle,omitempty"`
	Runs         int    `json:"runs"`
	Wickets      int    `json:"wickets"`
	Matches      int    `json:"matches"`
	Image        string `json:"image,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

func toPlayerDTO(p *domain.Player) PlayerDTO {
	return PlayerDTO{
		ID:           p.ID,
		Name:         p.Name,
		Team:         p.Team,
		Role:         p.Role,
		BattingStyle: p.BattingStyle,
		BowlingStyle: p.BowlingStyle,
		Runs:         p.Runs,
		Wickets:      p.Wickets,
		Matches:      p.Matches,
		Image:        p.Image,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

func toPlayerDTOs(players []domain.Player) []PlayerDTO {
	dtos := make([]PlayerDTO, len(players))
	for i := range players {
		dtos[i] = toPlayerDTO(&players[i])
	}
	return dtos
}

// TeamDTO is the JSON representation of a team record.
type TeamDTO struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Ranking   int    `json:"ranking"`
	Points    int    `json:"points"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
	Flag      string `json:"flag,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func toTeamDTO(t *domain.Team) TeamDTO {
	return TeamDTO{
		ID:        t.ID,
		Name:      t.Name,
		Ranking:   t.Ranking,
		Points:    t.Points,
		Wins:      t.Wins,
		Losses:    t.Losses,
		Flag:      t.Flag,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

func toTeamDTOs(teams []domain.Team) []TeamDTO {
	dtos := make([]TeamDTO, len(teams))
	for i := range teams {
		dtos[i] = toTeamDTO(&teams[i])
	}
	return dtos
}

// MatchDTO is the JSON representation of a match record.
type MatchDTO struct {
	ID        string `json:"_id"`
	Team1     string `json:"team1"`
	Team2     string `json:"team2"`
	Venue     string `json:"venue"`
	Date      string `json:"date"`
	Time      string `json:"time,omitempty"`
	Status    string `json:"status"`
	Result    string `json:"result,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func toMatchDTO(m *domain.Match) MatchDTO {
	return MatchDTO{
		ID:        m.ID,
		Team1:     m.Team1,
		Team2:     m.Team2,
		Venue:     m.Venue,
		Date:      m.Date.Format(time.RFC3339),
		Time:      m.Time,
		Status:    string(m.Status),
		Result:    m.Result,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

func toMatchDTOs(matches []domain.Match) []MatchDTO {
	dtos := make([]MatchDTO, len(matches))
	for i := range matches {
		dtos[i] = toMatchDTO(&matches[i])
	}
	return dtos
}
