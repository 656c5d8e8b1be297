package domain

import "time"

// TeamSize - размер команды покемонов
const TeamSize = 6

type Team struct {
	ID         int
	Name       string
	BirthDay   int
	BirthMonth int
	BirthYear  int
	Members    []string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
