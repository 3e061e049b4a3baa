package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/source-leagues", handler.ListSourceLeagues)
	mux.HandleFunc("GET /v1/source-leagues/{sourceLeagueID}/players", handler.ListSourceLeaguePlayers)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedUserRoutes(mux, handler, verifier)
	registerAuthorizedFantasyLeagueRoutes(mux, handler, verifier)
	registerAuthorizedMembershipRoutes(mux, handler, verifier)
	registerAuthorizedDraftRoutes(mux, handler, verifier)
	registerAuthorizedFantasyTeamRoutes(mux, handler, verifier)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/week-rollover", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunWeekRolloverJob)))
	mux.Handle("POST /v1/internal/jobs/week-rollover/schedule", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ScheduleWeekRolloverJob)))
}

func registerAuthorizedUserRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/users/me", RequireAuth(verifier, http.HandlerFunc(handler.RegisterMe)))
	mux.Handle("GET /v1/users/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMe)))
}

func registerAuthorizedFantasyLeagueRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/fantasy-leagues", RequireAuth(verifier, http.HandlerFunc(handler.CreateFantasyLeague)))
	mux.Handle("GET /v1/fantasy-leagues", RequireAuth(verifier, http.HandlerFunc(handler.ListMyFantasyLeagues)))
	mux.Handle("GET /v1/fantasy-leagues/{leagueID}", RequireAuth(verifier, http.HandlerFunc(handler.GetFantasyLeague)))
	mux.Handle("DELETE /v1/fantasy-leagues/{leagueID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteFantasyLeague)))
	mux.Handle("GET /v1/fantasy-leagues/{leagueID}/settings", RequireAuth(verifier, http.HandlerFunc(handler.GetLeagueSettings)))
	mux.Handle("PUT /v1/fantasy-leagues/{leagueID}/settings", RequireAuth(verifier, http.HandlerFunc(handler.UpdateLeagueSettings)))
	mux.Handle("GET /v1/fantasy-leagues/{leagueID}/scoring-settings", RequireAuth(verifier, http.HandlerFunc(handler.GetScoringSettings)))
	mux.Handle("PUT /v1/fantasy-leagues/{leagueID}/scoring-settings", RequireAuth(verifier, http.HandlerFunc(handler.UpdateScoringSettings)))
}

func registerAuthorizedMembershipRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/fantasy-leagues/{leagueID}/members", RequireAuth(verifier, http.HandlerFunc(handler.ListLeagueMembers)))
	mux.Handle("POST /v1/fantasy-leagues/{leagueID}/invites", RequireAuth(verifier, http.HandlerFunc(handler.SendInvite)))
	mux.Handle("POST /v1/fantasy-leagues/{leagueID}/join", RequireAuth(verifier, http.HandlerFunc(handler.JoinLeague)))
	mux.Handle("POST /v1/fantasy-leagues/{leagueID}/decline", RequireAuth(verifier, http.HandlerFunc(handler.DeclineInvite)))
	mux.Handle("POST /v1/fantasy-leagues/{leagueID}/leave", RequireAuth(verifier, http.HandlerFunc(handler.LeaveLeague)))
	mux.Handle("POST /v1/fantasy-leagues/{leagueID}/members/{userID}/revoke", RequireAuth(verifier, http.HandlerFunc(handler.RevokeMembership)))
}

func registerAuthorizedDraftRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/fantasy-leagues/{leagueID}/draft-order", RequireAuth(verifier, http.HandlerFunc(handler.GetDraftOrder)))
	mux.Handle("PUT /v1/fantasy-leagues/{leagueID}/draft-order", RequireAuth(verifier, http.HandlerFunc(handler.UpdateDraftOrder)))
	mux.Handle("POST /v1/fantasy-leagues/{leagueID}/draft/start", RequireAuth(verifier, http.HandlerFunc(handler.StartDraft)))
}

func registerAuthorizedFantasyTeamRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/fantasy-leagues/{leagueID}/teams/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMyTeamWeeks)))
	mux.Handle("GET /v1/fantasy-leagues/{leagueID}/teams", RequireAuth(verifier, http.HandlerFunc(handler.ListLeagueRosters)))
	mux.Handle("POST /v1/fantasy-leagues/{leagueID}/teams/me/pickup", RequireAuth(verifier, http.HandlerFunc(handler.PickupPlayer)))
	mux.Handle("POST /v1/fantasy-leagues/{leagueID}/teams/me/drop", RequireAuth(verifier, http.HandlerFunc(handler.DropPlayer)))
	mux.Handle("POST /v1/fantasy-leagues/{leagueID}/teams/me/swap", RequireAuth(verifier, http.HandlerFunc(handler.SwapPlayers)))
}
