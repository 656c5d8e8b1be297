package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bagdasarian/poketeam-api/internal/domain"
	"github.com/bagdasarian/poketeam-api/internal/generator"
	"github.com/bagdasarian/poketeam-api/internal/repository"
)

type teamService struct {
	teamRepo  repository.TeamRepository
	generator generator.Generator
	policy    MutationPolicy
	locks     *recordLocks
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(
	teamRepo repository.TeamRepository,
	gen generator.Generator,
	policy MutationPolicy,
) TeamService {
	return &teamService{
		teamRepo:  teamRepo,
		generator: gen,
		policy:    policy,
		locks:     newRecordLocks(),
	}
}

// CreateTeam проверяет имя и дату, генерирует шесть покемонов по сиду
// и сохраняет новую команду. При сбое генерации запись не создается.
func (s *teamService) CreateTeam(ctx context.Context, name string, day, month, year int) (*domain.Team, error) {
	if err := domain.ValidateBirthDate(day, month, year); err != nil {
		return nil, err
	}
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	members, err := s.generator.Generate(ctx, day, month, year)
	if err != nil {
		return nil, err
	}

	team := &domain.Team{
		Name:       name,
		BirthDay:   day,
		BirthMonth: month,
		BirthYear:  year,
		Members:    members,
	}

	if err := s.teamRepo.Insert(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

// GetTeamsByName возвращает все команды с указанным именем.
// Имя не уникально, пустой список - нормальный результат, а не ошибка.
func (s *teamService) GetTeamsByName(ctx context.Context, name string) ([]*domain.Team, error) {
	return s.teamRepo.FindByName(ctx, name)
}

// UpdateTeam частично обновляет команду. Нулевые значения day/month/year и
// пустое имя означают «оставить как есть». Если изменилось любое поле даты,
// все шесть покемонов перегенерируются из нового сида; смена только имени
// состав не трогает.
func (s *teamService) UpdateTeam(ctx context.Context, id int, newName string, newDay, newMonth, newYear int) (*domain.Team, error) {
	if !s.policy.CanMutate() {
		return nil, domain.ErrForbidden
	}

	s.locks.Lock(id)
	defer s.locks.Unlock(id)

	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("team with id %d", id))
		}
		return nil, err
	}

	if newName != "" {
		if err := domain.ValidateName(newName); err != nil {
			return nil, err
		}
		team.Name = newName
	}

	dateChanged := false
	if newDay != 0 && newDay != team.BirthDay {
		team.BirthDay = newDay
		dateChanged = true
	}
	if newMonth != 0 && newMonth != team.BirthMonth {
		team.BirthMonth = newMonth
		dateChanged = true
	}
	if newYear != 0 && newYear != team.BirthYear {
		team.BirthYear = newYear
		dateChanged = true
	}

	if err := domain.ValidateBirthDate(team.BirthDay, team.BirthMonth, team.BirthYear); err != nil {
		return nil, err
	}

	if dateChanged {
		members, err := s.generator.Generate(ctx, team.BirthDay, team.BirthMonth, team.BirthYear)
		if err != nil {
			return nil, err
		}
		team.Members = members
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("team with id %d", id))
		}
		return nil, err
	}

	return team, nil
}

// DeleteTeam безвозвратно удаляет команду по id
func (s *teamService) DeleteTeam(ctx context.Context, id int) error {
	if !s.policy.CanMutate() {
		return domain.ErrForbidden
	}

	s.locks.Lock(id)
	defer s.locks.Unlock(id)

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return domain.NewNotFoundError(fmt.Sprintf("team with id %d", id))
		}
		return err
	}

	return nil
}
