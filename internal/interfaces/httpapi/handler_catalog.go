package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListSourceLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSourceLeagues")
	defer span.End()

	leagues, err := h.sourceLeagueService.ListLeagues(ctx)
	if err != nil {
		h.logFailure(ctx, "list source leagues failed", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]sourceLeagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, sourceLeagueToDTO(ctx, l))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListSourceLeaguePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSourceLeaguePlayers")
	defer span.End()

	sourceLeagueID := strings.TrimSpace(r.PathValue("sourceLeagueID"))
	players, err := h.sourceLeagueService.ListPlayers(ctx, sourceLeagueID)
	if err != nil {
		h.logFailure(ctx, "list source league players failed", err, "source_league_id", sourceLeagueID)
		writeError(ctx, w, err)
		return
	}

	items := make([]proPlayerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, proPlayerToDTO(ctx, p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
