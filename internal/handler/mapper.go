package handler

import (
	"time"

	"github.com/bagdasarian/poketeam-api/internal/domain"
)

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	var updatedAt *string
	if team.UpdatedAt != nil {
		updatedAtStr := team.UpdatedAt.Format(time.RFC3339)
		updatedAt = &updatedAtStr
	}

	return TeamResponse{
		ID:         team.ID,
		Name:       team.Name,
		BirthDay:   team.BirthDay,
		BirthMonth: team.BirthMonth,
		BirthYear:  team.BirthYear,
		Pokemon:    team.Members,
		CreatedAt:  team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  updatedAt,
	}
}

func domainTeamsToHTTP(teams []*domain.Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		result = append(result, domainTeamToHTTP(team))
	}
	return result
}
