package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/lol-fantasy-league/internal/usecase"
)

func (h *Handler) GetMyTeamWeeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyTeamWeeks")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	teams, err := h.fantasyTeamService.GetAllTeamWeeks(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logFailure(ctx, "get team weeks failed", err, "user_id", principal.UserID, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fantasyTeamsToDTO(ctx, teams))
}

func (h *Handler) ListLeagueRosters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueRosters")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	week, err := queryInt(r, "week")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.fantasyTeamService.ListLeagueRosters(ctx, principal.UserID, leagueID, week)
	if err != nil {
		h.logFailure(ctx, "list league rosters failed", err, "user_id", principal.UserID, "league_id", leagueID, "week", week)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fantasyTeamsToDTO(ctx, teams))
}

func (h *Handler) PickupPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PickupPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	var req playerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.fantasyTeamService.PickupPlayer(ctx, usecase.PickupPlayerInput{
		UserID:   principal.UserID,
		LeagueID: leagueID,
		PlayerID: strings.TrimSpace(req.PlayerID),
	})
	if err != nil {
		h.logFailure(ctx, "pickup player failed", err, "user_id", principal.UserID, "league_id", leagueID, "player_id", req.PlayerID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fantasyTeamToDTO(ctx, team))
}

func (h *Handler) DropPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DropPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	var req playerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.fantasyTeamService.DropPlayer(ctx, usecase.DropPlayerInput{
		UserID:   principal.UserID,
		LeagueID: leagueID,
		PlayerID: strings.TrimSpace(req.PlayerID),
	})
	if err != nil {
		h.logFailure(ctx, "drop player failed", err, "user_id", principal.UserID, "league_id", leagueID, "player_id", req.PlayerID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fantasyTeamToDTO(ctx, team))
}

func (h *Handler) SwapPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SwapPlayers")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	var req swapPlayersRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.fantasyTeamService.SwapPlayers(ctx, usecase.SwapPlayersInput{
		UserID:         principal.UserID,
		LeagueID:       leagueID,
		DropPlayerID:   strings.TrimSpace(req.DropPlayerID),
		PickupPlayerID: strings.TrimSpace(req.PickupPlayerID),
	})
	if err != nil {
		h.logFailure(ctx, "swap players failed", err,
			"user_id", principal.UserID,
			"league_id", leagueID,
			"drop_player_id", req.DropPlayerID,
			"pickup_player_id", req.PickupPlayerID,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fantasyTeamToDTO(ctx, team))
}
