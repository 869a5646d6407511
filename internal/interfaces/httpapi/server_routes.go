package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/compare", handler.CompareTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}/summary", handler.GetTeamSummary)
	mux.HandleFunc("GET /v1/teams/{teamID}/summary.csv", handler.ExportTeamSummaryCSV)
	mux.HandleFunc("GET /v1/teams/{teamID}/players/stats", handler.ListTeamPlayerStats)
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.GetPlayerStats)
}
