package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/poketeam-api/internal/domain"
	"github.com/bagdasarian/poketeam-api/internal/repository"
)

type teamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Insert(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO pokemon_teams
			(name, birth_day, birth_month, birth_year,
			 pokemon_one, pokemon_two, pokemon_three, pokemon_four, pokemon_five, pokemon_six,
			 created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		team.Name,
		team.BirthDay,
		team.BirthMonth,
		team.BirthYear,
		team.Members[0],
		team.Members[1],
		team.Members[2],
		team.Members[3],
		team.Members[4],
		team.Members[5],
		time.Now(),
	).Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		return err
	}

	team.UpdatedAt = nil

	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int) (*domain.Team, error) {
	query := `
		SELECT id, name, birth_day, birth_month, birth_year,
		       pokemon_one, pokemon_two, pokemon_three, pokemon_four, pokemon_five, pokemon_six,
		       created_at, updated_at
		FROM pokemon_teams
		WHERE id = $1
	`

	team, err := scanTeam(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrTeamNotFound
		}
		return nil, err
	}

	return team, nil
}

func (r *teamRepository) FindByName(ctx context.Context, name string) ([]*domain.Team, error) {
	query := `
		SELECT id, name, birth_day, birth_month, birth_year,
		       pokemon_one, pokemon_two, pokemon_three, pokemon_four, pokemon_five, pokemon_six,
		       created_at, updated_at
		FROM pokemon_teams
		WHERE name = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	query := `
		UPDATE pokemon_teams
		SET name = $2, birth_day = $3, birth_month = $4, birth_year = $5,
		    pokemon_one = $6, pokemon_two = $7, pokemon_three = $8,
		    pokemon_four = $9, pokemon_five = $10, pokemon_six = $11,
		    updated_at = $12
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	now := time.Now()
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(
		ctx,
		query,
		team.ID,
		team.Name,
		team.BirthDay,
		team.BirthMonth,
		team.BirthYear,
		team.Members[0],
		team.Members[1],
		team.Members[2],
		team.Members[3],
		team.Members[4],
		team.Members[5],
		now,
	).Scan(&team.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrTeamNotFound
		}
		return err
	}

	if updatedAt.Valid {
		team.UpdatedAt = &updatedAt.Time
	} else {
		team.UpdatedAt = nil
	}

	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM pokemon_teams
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrTeamNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	team := &domain.Team{Members: make([]string, domain.TeamSize)}
	var updatedAt sql.NullTime
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.BirthDay,
		&team.BirthMonth,
		&team.BirthYear,
		&team.Members[0],
		&team.Members[1],
		&team.Members[2],
		&team.Members[3],
		&team.Members[4],
		&team.Members[5],
		&team.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if updatedAt.Valid {
		team.UpdatedAt = &updatedAt.Time
	} else {
		team.UpdatedAt = nil
	}

	return team, nil
}
