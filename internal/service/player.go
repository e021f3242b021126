package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/pitchside/internal/domain"
)

// PlayerService manages the players collection.
type PlayerService struct {
	players domain.PlayerRepository
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(players domain.PlayerRepository) *PlayerService {
	return &PlayerService{players: players}
}

// PlayerPatch carries a partial update. Nil fields keep their stored values.
type PlayerPatch struct {
	Name         *string
	Team         *string
	Role         *string
	BattingStyle *string
	BowlingStyle *string
	Runs         *int
	Wickets      *int
	Matches      *int
	Image        *string
}

// List returns all players, newest first.
func (s *PlayerService) List(ctx context.Context) ([]domain.Player, error) {
	return s.players.List(ctx)
}

// Create validates and stores a new player, returning it with a generated id.
func (s *PlayerService) Create(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	player.Name = strings.TrimSpace(player.Name)
	if player.Name == "" || player.Team == "" || player.Role == "" {
		return nil, fmt.Errorf("%w: name, team, and role are required", domain.ErrInvalidInput)
	}

	player.ID = uuid.NewString()
	player.CreatedAt = time.Now().UTC()

	if err := s.players.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	return player, nil
}

// Update applies a partial update to the player with the given id.
func (s *PlayerService) Update(ctx context.Context, id string, patch PlayerPatch) (*domain.Player, error) {
	player, err := s.players.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		player.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Team != nil {
		player.Team = *patch.Team
	}
	if patch.Role != nil {
		player.Role = *patch.Role
	}
	if patch.BattingStyle != nil {
		player.BattingStyle = *patch.BattingStyle
	}
	if patch.BowlingStyle != nil {
		player.BowlingStyle = *patch.BowlingStyle
	}
	if patch.Runs != nil {
		player.Runs = *patch.Runs
	}
	if patch.Wickets != nil {
		player.Wickets = *patch.Wickets
	}
	if patch.Matches != nil {
		player.Matches = *patch.Matches
	}
	if patch.Image != nil {
		player.Image = *patch.Image
	}

	if player.Name == "" || player.Team == "" || player.Role == "" {
		return nil, fmt.Errorf("%w: name, team, and role are required", domain.ErrInvalidInput)
	}

	if err := s.players.Update(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// Delete removes the player with the given id.
func (s *PlayerService) Delete(ctx context.Context, id string) error {
	return s.players.Delete(ctx, id)
}
