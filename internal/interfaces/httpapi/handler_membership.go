package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/usecase"
)

func (h *Handler) ListLeagueMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueMembers")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	members, err := h.fantasyLeagueService.ListMembers(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logFailure(ctx, "list league members failed", err, "user_id", principal.UserID, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueMemberDTO, 0, len(members))
	for _, m := range members {
		items = append(items, leagueMemberDTO{UserID: m.UserID, Username: m.Username, Status: string(m.Status)})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SendInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SendInvite")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	var req sendInviteRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	membership, err := h.fantasyLeagueService.SendInvite(ctx, usecase.SendInviteInput{
		UserID:   principal.UserID,
		LeagueID: leagueID,
		Username: req.Username,
	})
	if err != nil {
		h.logFailure(ctx, "send invite failed", err, "user_id", principal.UserID, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, membershipToDTO(ctx, membership))
}

func (h *Handler) JoinLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinLeague")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	membership, err := h.fantasyLeagueService.Join(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logFailure(ctx, "join league failed", err, "user_id", principal.UserID, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, membershipToDTO(ctx, membership))
}

func (h *Handler) DeclineInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeclineInvite")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	if err := h.fantasyLeagueService.DeclineInvite(ctx, principal.UserID, leagueID); err != nil {
		h.logFailure(ctx, "decline invite failed", err, "user_id", principal.UserID, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, membershipDTO{
		LeagueID: leagueID,
		UserID:   principal.UserID,
		Status:   string(fantasyleague.MembershipDeclined),
	})
}

func (h *Handler) LeaveLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeaveLeague")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	if err := h.fantasyLeagueService.Leave(ctx, principal.UserID, leagueID); err != nil {
		h.logFailure(ctx, "leave league failed", err, "user_id", principal.UserID, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, membershipDTO{
		LeagueID: leagueID,
		UserID:   principal.UserID,
		Status:   string(fantasyleague.MembershipDeclined),
	})
}

func (h *Handler) RevokeMembership(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RevokeMembership")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	targetUserID := strings.TrimSpace(r.PathValue("userID"))

	if err := h.fantasyLeagueService.RevokeMembership(ctx, usecase.RevokeMembershipInput{
		UserID:       principal.UserID,
		LeagueID:     leagueID,
		TargetUserID: targetUserID,
	}); err != nil {
		h.logFailure(ctx, "revoke membership failed", err, "user_id", principal.UserID, "league_id", leagueID, "target_user_id", targetUserID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, membershipDTO{
		LeagueID: leagueID,
		UserID:   targetUserID,
		Status:   string(fantasyleague.MembershipRevoked),
	})
}
