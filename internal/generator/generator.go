package generator

import (
	"context"

	"github.com/bagdasarian/poketeam-api/internal/domain"
	"github.com/bagdasarian/poketeam-api/internal/pokeapi"
	"golang.org/x/sync/errgroup"
)

// pokedexCeiling - верхняя граница номеров покедекса (исключительно)
const pokedexCeiling = 905

// Generator собирает команду из шести имен покемонов по дате рождения
type Generator interface {
	Generate(ctx context.Context, day, month, year int) ([]string, error)
}

type teamGenerator struct {
	resolver pokeapi.Resolver
}

// NewTeamGenerator создает новый экземпляр Generator
func NewTeamGenerator(resolver pokeapi.Resolver) Generator {
	return &teamGenerator{resolver: resolver}
}

// Generate проверяет дату, делает шесть детерминированных розыгрышей номеров
// и резолвит каждый номер в имя. Номера разыгрываются строго последовательно,
// резолвинг идет параллельно, но слот i всегда получает имя i-го розыгрыша.
// Любая неудачная резолюция отменяет всю генерацию.
func (g *teamGenerator) Generate(ctx context.Context, day, month, year int) ([]string, error) {
	if err := domain.ValidateBirthDate(day, month, year); err != nil {
		return nil, err
	}

	seq := NewSequencer(Seed(day, month, year))
	ids := make([]int, domain.TeamSize)
	for i := range ids {
		ids[i] = seq.Next(pokedexCeiling)
	}

	members := make([]string, domain.TeamSize)
	eg, egCtx := errgroup.WithContext(ctx)
	for i, id := range ids {
		eg.Go(func() error {
			name, err := g.resolver.ResolveName(egCtx, id)
			if err != nil {
				return err
			}
			members[i] = name
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, domain.NewUpstreamUnavailableError(err.Error())
	}

	return members, nil
}
