package service

import (
	"context"

	"github.com/bagdasarian/poketeam-api/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, name string, day, month, year int) (*domain.Team, error)
	GetTeamsByName(ctx context.Context, name string) ([]*domain.Team, error)
	UpdateTeam(ctx context.Context, id int, newName string, newDay, newMonth, newYear int) (*domain.Team, error)
	DeleteTeam(ctx context.Context, id int) error
}
