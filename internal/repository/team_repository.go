package repository

import (
	"context"
	"errors"

	"github.com/bagdasarian/poketeam-api/internal/domain"
)

// ErrTeamNotFound возвращается хранилищем, когда записи с таким id нет
var ErrTeamNotFound = errors.New("team not found")

type TeamRepository interface {
	Insert(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id int) (*domain.Team, error)
	FindByName(ctx context.Context, name string) ([]*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id int) error
}
