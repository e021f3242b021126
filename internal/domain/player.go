package domain

import (
	"context"
	"time"
)

// Player is a cricket player record. Team is free text, not a foreign key
// into the teams collection.
type Player struct {
	ID           string
	Name         string
	Team         string
	Role         string
	BattingStyle string
	BowlingStyle string
	Runs         int
	Wickets      int
	Matches      int
	Image        string
	CreatedAt    time.Time
}

// PlayerRepository defines persistence operations for players.
// List returns players newest first.
type PlayerRepository interface {
	Create(ctx context.Context, player *Player) error
	GetByID(ctx context.Context, id string) (*Player, error)
	List(ctx context.Context) ([]Player, error)
	Update(ctx context.Context, player *Player) error
	Delete(ctx context.Context, id string) error
}
