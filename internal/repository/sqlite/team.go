package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/pitchside/internal/domain"
)

// TeamRepository implements domain.TeamRepository using SQLite.
type TeamRepository struct {
	db *sql.DB
}

// NewTeamRepository creates a new SQLite-backed TeamRepository.
func NewTeamRepository(db *DB) *TeamRepository {
	return &TeamRepository{db: db.SqlDB}
}

const teamColumns = `id, name, ranking, points, wins, losses, flag, created_at`

func scanTeam(row interface{ Scan(...any) error }, t *domain.Team) error {
	return row.Scan(&t.ID, &t.Name, &t.Ranking, &t.Points, &t.Wins, &t.Losses, &t.Flag, &t.CreatedAt)
}

func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO teams (`+teamColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		team.ID, team.Name, team.Ranking, team.Points, team.Wins, team.Losses,
		team.Flag, team.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	team := &domain.Team{}
	row := r.db.QueryRowContext(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE id = ?`, id)
	if err := scanTeam(row, team); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query team by id: %w", err)
	}
	return team, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+teamColumns+` FROM teams ORDER BY ranking, id`)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	teams := []domain.Team{}
	for rows.Next() {
		var t domain.Team
		if err := scanTeam(rows, &t); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) Update(ctx context.Context, team *domain.Team) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE teams SET name = ?, ranking = ?, points = ?, wins = ?, losses = ?, flag = ?
		 WHERE id = ?`,
		team.Name, team.Ranking, team.Points, team.Wins, team.Losses, team.Flag, team.ID,
	)
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	return requireRowAffected(result)
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return requireRowAffected(result)
}
