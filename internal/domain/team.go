package domain

import (
	"context"
	"time"
)

// Team is a cricket team record.
type Team struct {
	ID        string
	Name      string
	Ranking   int
	Points    int
	Wins      int
	Losses    int
	Flag      string
	CreatedAt time.Time
}

// TeamRepository defines persistence operations for teams.
// List returns teams ordered by ranking, best first.
type TeamRepository interface {
	Create(ctx context.Context, team *Team) error
	GetByID(ctx context.Context, id string) (*Team, error)
	List(ctx context.Context) ([]Team, error)
	Update(ctx context.Context, team *Team) error
	Delete(ctx context.Context, id string) error
}
