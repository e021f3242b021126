package domain

import (
	"context"
	"time"
)

// MatchStatus is the lifecycle state of a match.
type MatchStatus string

const (
	StatusLive      MatchStatus = "live"
	StatusUpcoming  MatchStatus = "upcoming"
	StatusCompleted MatchStatus = "completed"
)

// Valid reports whether s is one of the known match statuses.
func (s MatchStatus) Valid() bool {
	switch s {
	case StatusLive, StatusUpcoming, StatusCompleted:
		return true
	}
	return false
}

// Match is a scheduled or played fixture between two teams. Team names are
// free text, not foreign keys.
type Match struct {
	ID        string
	Team1     string
	Team2     string
	Venue     string
	Date      time.Time
	Time      string
	Status    MatchStatus
	Result    string
	CreatedAt time.Time
}

// MatchRepository defines persistence operations for matches.
// List returns matches ordered by fixture date, earliest first.
type MatchRepository interface {
	Create(ctx context.Context, match *Match) error
	GetByID(ctx context.Context, id string) (*Match, error)
	List(ctx context.Context) ([]Match, error)
	Update(ctx context.Context, match *Match) error
	Delete(ctx context.Context, id string) error
}
