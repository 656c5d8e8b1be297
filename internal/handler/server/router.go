package server

import (
	"net/http"

	"github.com/bagdasarian/poketeam-api/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /poketeam/create", h.CreateTeam)
	mux.HandleFunc("GET /poketeam/read", h.GetTeams)
	mux.HandleFunc("PUT /poketeam/update", h.UpdateTeam)
	mux.HandleFunc("DELETE /poketeam/delete", h.DeleteTeam)
}
