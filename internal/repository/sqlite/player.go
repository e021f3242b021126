package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/pitchside/internal/domain"
)

// PlayerRepository implements domain.PlayerRepository using SQLite.
type PlayerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a new SQLite-backed PlayerRepository.
func NewPlayerRepository(db *DB) *PlayerRepository {
	return &PlayerRepository{db: db.SqlDB}
}

const playerColumns = `id, name, team, role, batting_style, bowling_style, runs, wickets, matches, image, created_at`

func scanPlayer(row interface{ Scan(...any) error }, p *domain.Player) error {
	return row.Scan(&p.ID, &p.Name, &p.Team, &p.Role, &p.BattingStyle, &p.BowlingStyle,
		&p.Runs, &p.Wickets, &p.Matches, &p.Image, &p.CreatedAt)
}

func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO players (`+playerColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		player.ID, player.Name, player.Team, player.Role, player.BattingStyle,
		player.BowlingStyle, player.Runs, player.Wickets, player.Matches,
		player.Image, player.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	player := &domain.Player{}
	row := r.db.QueryRowContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id = ?`, id)
	if err := scanPlayer(row, player); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query player by id: %w", err)
	}
	return player, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]domain.Player, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+playerColumns+` FROM players ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	players := []domain.Player{}
	for rows.Next() {
		var p domain.Player
		if err := scanPlayer(rows, &p); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (r *PlayerRepository) Update(ctx context.Context, player *domain.Player) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE players SET name = ?, team = ?, role = ?, batting_style = ?,
		 bowling_style = ?, runs = ?, wickets = ?, matches = ?, image = ?
		 WHERE id = ?`,
		player.Name, player.Team, player.Role, player.BattingStyle,
		player.BowlingStyle, player.Runs, player.Wickets, player.Matches,
		player.Image, player.ID,
	)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return requireRowAffected(result)
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return requireRowAffected(result)
}

// requireRowAffected maps a zero-row mutation to ErrNotFound.
func requireRowAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
