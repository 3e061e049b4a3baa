package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/usecase"
)

func (h *Handler) GetDraftOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftOrder")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	slots, err := h.fantasyLeagueService.GetDraftOrder(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logFailure(ctx, "get draft order failed", err, "user_id", principal.UserID, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftOrderToDTO(ctx, slots))
}

func (h *Handler) UpdateDraftOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateDraftOrder")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	var req updateDraftOrderRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries := make([]fantasyleague.DraftOrderEntry, 0, len(req.Entries))
	for _, entry := range req.Entries {
		entries = append(entries, fantasyleague.DraftOrderEntry{
			LeagueID: leagueID,
			UserID:   strings.TrimSpace(entry.UserID),
			Position: entry.Position,
		})
	}

	slots, err := h.fantasyLeagueService.UpdateDraftOrder(ctx, usecase.UpdateDraftOrderInput{
		UserID:   principal.UserID,
		LeagueID: leagueID,
		Entries:  entries,
	})
	if err != nil {
		h.logFailure(ctx, "update draft order failed", err, "user_id", principal.UserID, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftOrderToDTO(ctx, slots))
}

func (h *Handler) StartDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartDraft")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	league, err := h.fantasyLeagueService.StartDraft(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logFailure(ctx, "start draft failed", err, "user_id", principal.UserID, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fantasyLeagueToDTO(ctx, league))
}
