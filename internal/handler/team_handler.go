package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bagdasarian/poketeam-api/internal/domain"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "invalid request body",
		})
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), req.Name, req.BirthDay, req.BirthMonth, req.BirthYear)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateTeamResponse{
		Team: domainTeamToHTTP(team),
	})
}

func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "name parameter is required",
		})
		return
	}

	teams, err := h.teamService.GetTeamsByName(r.Context(), name)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(GetTeamsResponse{
		Teams: domainTeamsToHTTP(teams),
	})
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "invalid request body",
		})
		return
	}

	if req.ID <= 0 {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "id must be a positive integer",
		})
		return
	}

	team, err := h.teamService.UpdateTeam(r.Context(), req.ID, req.NewName, req.NewDay, req.NewMonth, req.NewYear)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(UpdateTeamResponse{
		Team: domainTeamToHTTP(team),
	})
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("id")
	id, err := strconv.Atoi(idParam)
	if err != nil || id <= 0 {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "id parameter must be a positive integer",
		})
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
