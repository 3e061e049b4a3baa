package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/lol-fantasy-league/internal/usecase"
)

type weekRolloverJobResponse struct {
	Result usecase.WeekRolloverResult      `json:"result"`
	Next   *usecase.ScheduleRolloverResult `json:"next,omitempty"`
}

// RunWeekRolloverJob advances every active league. A payload with schedule_next set
// enqueues the following run, which is how the QStash chain keeps itself going.
func (h *Handler) RunWeekRolloverJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunWeekRolloverJob")
	defer span.End()

	if h.weekRolloverService == nil {
		writeError(ctx, w, fmt.Errorf("%w: week rollover is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req weekRolloverJobRequest
	if err := decodeOptionalRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.weekRolloverService.AdvanceActiveLeagues(ctx)
	if err != nil {
		h.logFailure(ctx, "run week rollover job failed", err, "dispatch_id", req.DispatchID)
		writeError(ctx, w, err)
		return
	}

	resp := weekRolloverJobResponse{Result: result}
	if req.ScheduleNext {
		next, err := h.weekRolloverService.ScheduleNext(ctx)
		if err != nil {
			h.logFailure(ctx, "schedule next week rollover failed", err, "dispatch_id", req.DispatchID)
			writeError(ctx, w, err)
			return
		}
		resp.Next = &next
	}

	writeSuccess(ctx, w, http.StatusOK, resp)
}

func (h *Handler) ScheduleWeekRolloverJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleWeekRolloverJob")
	defer span.End()

	if h.weekRolloverService == nil {
		writeError(ctx, w, fmt.Errorf("%w: week rollover is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	next, err := h.weekRolloverService.ScheduleNext(ctx)
	if err != nil {
		h.logFailure(ctx, "schedule week rollover failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, next)
}
