package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/usecase"
)

func (h *Handler) CreateFantasyLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFantasyLeague")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createFantasyLeagueRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	league, err := h.fantasyLeagueService.CreateLeague(ctx, usecase.CreateFantasyLeagueInput{
		UserID:           principal.UserID,
		Name:             req.Name,
		NumberOfTeams:    req.NumberOfTeams,
		AvailableLeagues: req.AvailableLeagues,
	})
	if err != nil {
		h.logFailure(ctx, "create fantasy league failed", err, "user_id", principal.UserID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, fantasyLeagueToDTO(ctx, league))
}

func (h *Handler) ListMyFantasyLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyFantasyLeagues")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagues, err := h.fantasyLeagueService.ListMyLeagues(ctx, principal.UserID)
	if err != nil {
		h.logFailure(ctx, "list my fantasy leagues failed", err, "user_id", principal.UserID)
		writeError(ctx, w, err)
		return
	}

	items := make([]myFantasyLeagueDTO, 0, len(leagues))
	for _, item := range leagues {
		items = append(items, myFantasyLeagueDTO{
			fantasyLeagueDTO: fantasyLeagueToDTO(ctx, item.League),
			MembershipStatus: string(item.MembershipStatus),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetFantasyLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFantasyLeague")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	league, err := h.fantasyLeagueService.GetLeague(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logFailure(ctx, "get fantasy league failed", err, "user_id", principal.UserID, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fantasyLeagueToDTO(ctx, league))
}

func (h *Handler) DeleteFantasyLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteFantasyLeague")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	if err := h.fantasyLeagueService.DeleteLeague(ctx, principal.UserID, leagueID); err != nil {
		h.logFailure(ctx, "delete fantasy league failed", err, "user_id", principal.UserID, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"league_id": leagueID, "status": string(fantasyleague.StatusDeleted)})
}

func (h *Handler) GetLeagueSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueSettings")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	settings, err := h.fantasyLeagueService.GetSettings(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logFailure(ctx, "get league settings failed", err, "user_id", principal.UserID, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueSettingsToDTO(ctx, settings))
}

func (h *Handler) UpdateLeagueSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateLeagueSettings")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	var req updateLeagueSettingsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	settings, err := h.fantasyLeagueService.UpdateSettings(ctx, usecase.UpdateLeagueSettingsInput{
		UserID:           principal.UserID,
		LeagueID:         leagueID,
		Name:             req.Name,
		NumberOfTeams:    req.NumberOfTeams,
		AvailableLeagues: req.AvailableLeagues,
	})
	if err != nil {
		h.logFailure(ctx, "update league settings failed", err, "user_id", principal.UserID, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueSettingsToDTO(ctx, settings))
}

func (h *Handler) GetScoringSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScoringSettings")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	settings, err := h.fantasyLeagueService.GetScoringSettings(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logFailure(ctx, "get scoring settings failed", err, "user_id", principal.UserID, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoringSettingsToDTO(ctx, settings))
}

func (h *Handler) UpdateScoringSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateScoringSettings")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	var req scoringSettingsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	settings, err := h.fantasyLeagueService.UpdateScoringSettings(ctx, usecase.UpdateScoringSettingsInput{
		UserID:   principal.UserID,
		LeagueID: leagueID,
		Settings: req.toDomain(leagueID),
	})
	if err != nil {
		h.logFailure(ctx, "update scoring settings failed", err, "user_id", principal.UserID, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoringSettingsToDTO(ctx, settings))
}
