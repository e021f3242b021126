package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/pitchside/internal/domain"
)

// TeamService manages the teams collection.
type TeamService struct {
	teams domain.TeamRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(teams domain.TeamRepository) *TeamService {
	return &TeamService{teams: teams}
}

// TeamPatch carries a partial update. Nil fields keep their stored values.
type TeamPatch struct {
	Name    *string
	Ranking *int
	Points  *int
	Wins    *int
	Losses  *int
	Flag    *string
}

// List returns all teams ordered by ranking.
func (s *TeamService) List(ctx context.Context) ([]domain.Team, error) {
	return s.teams.List(ctx)
}

// Create validates and stores a new team, returning it with a generated id.
func (s *TeamService) Create(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	team.Name = strings.TrimSpace(team.Name)
	if team.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if team.Ranking <= 0 {
		return nil, fmt.Errorf("%w: ranking must be a positive number", domain.ErrInvalidInput)
	}

	team.ID = uuid.NewString()
	team.CreatedAt = time.Now().UTC()

	if err := s.teams.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}
	return team, nil
}

// Update applies a partial update to the team with the given id.
func (s *TeamService) Update(ctx context.Context, id string, patch TeamPatch) (*domain.Team, error) {
	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		team.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Ranking != nil {
		team.Ranking = *patch.Ranking
	}
	if patch.Points != nil {
		team.Points = *patch.Points
	}
	if patch.Wins != nil {
		team.Wins = *patch.Wins
	}
	if patch.Losses != nil {
		team.Losses = *patch.Losses
	}
	if patch.Flag != nil {
		team.Flag = *patch.Flag
	}

	if team.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if team.Ranking <= 0 {
		return nil, fmt.Errorf("%w: ranking must be a positive number", domain.ErrInvalidInput)
	}

	if err := s.teams.Update(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// Delete removes the team with the given id.
func (s *TeamService) Delete(ctx context.Context, id string) error {
	return s.teams.Delete(ctx, id)
}
