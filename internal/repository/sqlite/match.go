package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/pitchside/internal/domain"
)

// MatchRepository implements domain.MatchRepository using SQLite.
type MatchRepository struct {
	db *sql.DB
}

// NewMatchRepository creates a new SQLite-backed MatchRepository.
func NewMatchRepository(db *DB) *MatchRepository {
	return &MatchRepository{db: db.SqlDB}
}

const matchColumns = `id, team1, team2, venue, date, time, status, result, created_at`

func scanMatch(row interface{ Scan(...any) error }, m *domain.Match) error {
	return row.Scan(&m.ID, &m.Team1, &m.Team2, &m.Venue, &m.Date, &m.Time,
		&m.Status, &m.Result, &m.CreatedAt)
}

func (r *MatchRepository) Create(ctx context.Context, match *domain.Match) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO matches (`+matchColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		match.ID, match.Team1, match.Team2, match.Venue, match.Date, match.Time,
		match.Status, match.Result, match.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	match := &domain.Match{}
	row := r.db.QueryRowContext(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE id = ?`, id)
	if err := scanMatch(row, match); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query match by id: %w", err)
	}
	return match, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]domain.Match, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+matchColumns+` FROM matches ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	matches := []domain.Match{}
	for rows.Next() {
		var m domain.Match
		if err := scanMatch(rows, &m); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *MatchRepository) Update(ctx context.Context, match *domain.Match) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE matches SET team1 = ?, team2 = ?, venue = ?, date = ?, time = ?,
		 status = ?, result = ? WHERE id = ?`,
		match.Team1, match.Team2, match.Venue, match.Date, match.Time,
		match.Status, match.Result, match.ID,
	)
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	return requireRowAffected(result)
}

func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	return requireRowAffected(result)
}
