package generator

import "math/rand"

// Seed вычисляет сид команды как сумму дня, месяца и года рождения.
// Разные даты с одинаковой суммой дают одинаковый сид - это исходное
// поведение, коллизии не считаются ошибкой.
func Seed(day, month, year int) int {
	return day + month + year
}

// Sequencer - детерминированный генератор ограниченных целых.
// Один и тот же сид всегда дает один и тот же поток значений
// в пределах одного развертывания.
type Sequencer struct {
	rng *rand.Rand
}

func NewSequencer(seed int) *Sequencer {
	return &Sequencer{rng: rand.New(rand.NewSource(int64(seed)))}
}

// Next возвращает следующее значение в диапазоне [0, bound)
func (s *Sequencer) Next(bound int) int {
	return s.rng.Intn(bound)
}
