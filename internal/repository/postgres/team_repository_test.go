package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/poketeam-api/internal/domain"
	"github.com/bagdasarian/poketeam-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// setupTeamRepo создает мок БД и репозиторий команд
func setupTeamRepo(t *testing.T) (*teamRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewTeamRepository(db), mock
}

func teamColumns() []string {
	return []string{
		"id", "name", "birth_day", "birth_month", "birth_year",
		"pokemon_one", "pokemon_two", "pokemon_three", "pokemon_four", "pokemon_five", "pokemon_six",
		"created_at", "updated_at",
	}
}

func storedTeam() *domain.Team {
	return &domain.Team{
		Name:       "Ash",
		BirthDay:   1,
		BirthMonth: 2,
		BirthYear:  2000,
		Members:    []string{"bulbasaur", "charmander", "squirtle", "pikachu", "eevee", "snorlax"},
	}
}

func TestTeamRepository_Insert(t *testing.T) {
	t.Run("успешное создание команды", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		now := time.Now()
		team := storedTeam()

		rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now)
		mock.ExpectQuery("INSERT INTO pokemon_teams").
			WithArgs("Ash", 1, 2, 2000,
				"bulbasaur", "charmander", "squirtle", "pikachu", "eevee", "snorlax",
				sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Insert(context.Background(), team)

		require.NoError(t, err)
		assert.Equal(t, 1, team.ID)
		assert.Nil(t, team.UpdatedAt, "updated_at должен быть nil для новой команды")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка БД пробрасывается", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectQuery("INSERT INTO pokemon_teams").
			WillReturnError(errors.New("constraint violation"))

		err := repo.Insert(context.Background(), storedTeam())

		require.Error(t, err)
	})
}

func TestTeamRepository_GetByID(t *testing.T) {
	t.Run("успешное получение команды", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		now := time.Now()
		rows := sqlmock.NewRows(teamColumns()).
			AddRow(1, "Ash", 1, 2, 2000,
				"bulbasaur", "charmander", "squirtle", "pikachu", "eevee", "snorlax",
				now, nil)
		mock.ExpectQuery("SELECT (.+) FROM pokemon_teams").
			WithArgs(1).
			WillReturnRows(rows)

		team, err := repo.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, 1, team.ID)
		assert.Equal(t, "Ash", team.Name)
		assert.Len(t, team.Members, domain.TeamSize)
		assert.Equal(t, "pikachu", team.Members[3])
		assert.Nil(t, team.UpdatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM pokemon_teams").
			WithArgs(99).
			WillReturnError(sql.ErrNoRows)

		team, err := repo.GetByID(context.Background(), 99)

		require.Error(t, err)
		assert.Nil(t, team)
		assert.True(t, errors.Is(err, repository.ErrTeamNotFound))
	})
}

func TestTeamRepository_FindByName(t *testing.T) {
	t.Run("имя не уникально - возвращаются все совпадения", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		now := time.Now()
		rows := sqlmock.NewRows(teamColumns()).
			AddRow(1, "Ash", 1, 2, 2000,
				"bulbasaur", "charmander", "squirtle", "pikachu", "eevee", "snorlax",
				now, nil).
			AddRow(3, "Ash", 5, 6, 1995,
				"mewtwo", "mew", "ditto", "gengar", "lapras", "onix",
				now, nil)
		mock.ExpectQuery("SELECT (.+) FROM pokemon_teams").
			WithArgs("Ash").
			WillReturnRows(rows)

		teams, err := repo.FindByName(context.Background(), "Ash")

		require.NoError(t, err)
		require.Len(t, teams, 2)
		assert.Equal(t, 1, teams[0].ID)
		assert.Equal(t, 3, teams[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("нет совпадений - пустой список без ошибки", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM pokemon_teams").
			WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows(teamColumns()))

		teams, err := repo.FindByName(context.Background(), "nobody")

		require.NoError(t, err)
		assert.NotNil(t, teams)
		assert.Empty(t, teams)
	})
}

func TestTeamRepository_Update(t *testing.T) {
	t.Run("успешное обновление", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		createdAt := time.Now().Add(-24 * time.Hour)
		updatedAt := time.Now()
		team := storedTeam()
		team.ID = 1

		rows := sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(createdAt, updatedAt)
		mock.ExpectQuery("UPDATE pokemon_teams").
			WithArgs(1, "Ash", 1, 2, 2000,
				"bulbasaur", "charmander", "squirtle", "pikachu", "eevee", "snorlax",
				sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Update(context.Background(), team)

		require.NoError(t, err)
		require.NotNil(t, team.UpdatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		team := storedTeam()
		team.ID = 99

		mock.ExpectQuery("UPDATE pokemon_teams").
			WillReturnError(sql.ErrNoRows)

		err := repo.Update(context.Background(), team)

		require.Error(t, err)
		assert.True(t, errors.Is(err, repository.ErrTeamNotFound))
	})
}

func TestTeamRepository_Delete(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectExec("DELETE FROM pokemon_teams").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 1)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectExec("DELETE FROM pokemon_teams").
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)

		require.Error(t, err)
		assert.True(t, errors.Is(err, repository.ErrTeamNotFound))
	})
}
