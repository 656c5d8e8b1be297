package handler

import "github.com/bagdasarian/poketeam-api/internal/service"

type Handler struct {
	teamService service.TeamService
}

func NewHandler(teamService service.TeamService) *Handler {
	return &Handler{
		teamService: teamService,
	}
}
