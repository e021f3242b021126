package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/pitchside/internal/domain"
)

// MatchService manages the matches collection.
type MatchService struct {
	matches domain.MatchRepository
}

// NewMatchService creates a new MatchService.
func NewMatchService(matches domain.MatchRepository) *MatchService {
	return &MatchService{matches: matches}
}

// MatchPatch carries a partial update. Nil fields keep their stored values.
type MatchPatch struct {
	Team1  *string
	Team2  *string
	Venue  *string
	Date   *time.Time
	Time   *string
	Status *domain.MatchStatus
	Result *string
}

// List returns all matches ordered by fixture date.
func (s *MatchService) List(ctx context.Context) ([]domain.Match, error) {
	return s.matches.List(ctx)
}

// Create validates and stores a new match, returning it with a generated id.
// A missing status defaults to upcoming.
func (s *MatchService) Create(ctx context.Context, match *domain.Match) (*domain.Match, error) {
	match.Team1 = strings.TrimSpace(match.Team1)
	match.Team2 = strings.TrimSpace(match.Team2)
	if match.Team1 == "" || match.Team2 == "" || match.Venue == "" {
		return nil, fmt.Errorf("%w: team1, team2, and venue are required", domain.ErrInvalidInput)
	}
	if match.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}
	if match.Status == "" {
		match.Status = domain.StatusUpcoming
	}
	if !match.Status.Valid() {
		return nil, fmt.Errorf("%w: status must be live, upcoming, or completed", domain.ErrInvalidInput)
	}

	match.ID = uuid.NewString()
	match.CreatedAt = time.Now().UTC()

	if err := s.matches.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}
	return match, nil
}

// Update applies a partial update to the match with the given id.
func (s *MatchService) Update(ctx context.Context, id string, patch MatchPatch) (*domain.Match, error) {
	match, err := s.matches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Team1 != nil {
		match.Team1 = strings.TrimSpace(*patch.Team1)
	}
	if patch.Team2 != nil {
		match.Team2 = strings.TrimSpace(*patch.Team2)
	}
	if patch.Venue != nil {
		match.Venue = *patch.Venue
	}
	if patch.Date != nil {
		match.Date = *patch.Date
	}
	if patch.Time != nil {
		match.Time = *patch.Time
	}
	if patch.Status != nil {
		match.Status = *patch.Status
	}
	if patch.Result != nil {
		match.Result = *patch.Result
	}

	if match.Team1 == "" || match.Team2 == "" || match.Venue == "" {
		return nil, fmt.Errorf("%w: team1, team2, and venue are required", domain.ErrInvalidInput)
	}
	if !match.Status.Valid() {
		return nil, fmt.Errorf("%w: status must be live, upcoming, or completed", domain.ErrInvalidInput)
	}

	if err := s.matches.Update(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// Delete removes the match with the given id.
func (s *MatchService) Delete(ctx context.Context, id string) error {
	return s.matches.Delete(ctx, id)
}
