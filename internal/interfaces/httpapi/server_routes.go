package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/teams", handler.CreateTeam)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)

	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)

	mux.HandleFunc("POST /v1/matches/start", handler.StartMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("POST /v1/matches/{matchID}/events", handler.AddMatchEvent)
	mux.HandleFunc("POST /v1/matches/{matchID}/end", handler.EndMatch)

	mux.HandleFunc("GET /v1/leaderboards/teams", handler.TeamLeaderboard)
	mux.HandleFunc("GET /v1/leaderboards/players", handler.PlayerLeaderboard)

	mux.HandleFunc("PUT /v1/formations", handler.SaveFormation)
	mux.HandleFunc("GET /v1/formations/{teamID}", handler.GetFormation)
}
