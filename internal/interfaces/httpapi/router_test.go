package httpapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyteam"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/user"
	"github.com/riskibarqy/lol-fantasy-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/lol-fantasy-league/internal/platform/id"
	"github.com/riskibarqy/lol-fantasy-league/internal/platform/logging"
	"github.com/riskibarqy/lol-fantasy-league/internal/usecase"
)

const testJobToken = "job-secret"

// tokenVerifier treats the bearer token as the user id.
type tokenVerifier struct{}

func (tokenVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	if token == "expired" {
		return user.Principal{}, fmt.Errorf("%w: token expired", usecase.ErrUnauthorized)
	}
	return user.Principal{UserID: token, Email: token + "@example.com"}, nil
}

type envelope struct {
	APIVersion string         `json:"apiVersion"`
	Data       any            `json:"data"`
	Error      *errorEnvelope `json:"error"`
}

// object returns the data field when it is a JSON object.
func (e envelope) object() map[string]any {
	m, _ := e.Data.(map[string]any)
	return m
}

type errorEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repos := usecase.FantasyRepositories{
		Leagues:       memory.NewFantasyLeagueRepository(),
		Memberships:   memory.NewMembershipRepository(),
		DraftOrder:    memory.NewDraftOrderRepository(),
		Scoring:       memory.NewScoringSettingsRepository(),
		Teams:         memory.NewFantasyTeamRepository(),
		Players:       memory.NewProPlayerRepository(memory.SeedProPlayers(), memory.SeedProPlayerRosters()),
		SourceLeagues: memory.NewSourceLeagueRepository(memory.SeedSourceLeagues()),
		Users:         memory.NewUserRepository(),
	}
	tx := memory.NewLeagueTransactor()
	logger := logging.NewNop()

	handler := NewHandler(
		usecase.NewUserService(repos.Users, logger),
		usecase.NewSourceLeagueService(repos.SourceLeagues, repos.Players),
		usecase.NewFantasyLeagueService(repos, tx, id.NewUUIDGenerator(), logger),
		usecase.NewFantasyTeamService(repos, tx, logger),
		usecase.NewWeekRolloverService(repos, tx, nil, usecase.WeekRolloverConfig{SeasonWeeks: 9}, logger),
		logger,
	)
	return NewRouter(handler, tokenVerifier{}, logger, []string{"*"}, testJobToken)
}

func doRequest(t *testing.T, router http.Handler, method, path, token string, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal response body %q: %v", rec.Body.String(), err)
	}
	return rec, env
}

func registerUser(t *testing.T, router http.Handler, userID, username string) {
	t.Helper()
	rec, _ := doRequest(t, router, http.MethodPost, "/v1/users/me", userID, fmt.Sprintf(`{"username":%q}`, username))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", username, rec.Code, rec.Body.String())
	}
}

func createLeague(t *testing.T, router http.Handler, ownerID string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":"Worlds Watch Party","number_of_teams":4,"available_leagues":[%q]}`, memory.SourceLeagueIDLCK)
	rec, env := doRequest(t, router, http.MethodPost, "/v1/fantasy-leagues", ownerID, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create league: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	leagueID, _ := env.object()["id"].(string)
	if leagueID == "" {
		t.Fatalf("expected league id in response, got %v", env.object())
	}
	if got, _ := env.object()["status"].(string); got != string(fantasyleague.StatusPreDraft) {
		t.Fatalf("expected PRE_DRAFT league, got %v", env.object()["status"])
	}
	return leagueID
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if env.object()["status"] != "ok" {
		t.Fatalf("unexpected health payload: %v", env.Data)
	}
}

func TestRouter_ListSourceLeaguesIsPublic(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/v1/source-leagues", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data []sourceLeagueDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Data) == 0 {
		t.Fatalf("expected seeded source leagues")
	}
}

func TestRouter_RequiresBearerToken(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/v1/fantasy-leagues", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if env.Error == nil || env.Error.Status != "UNAUTHENTICATED" {
		t.Fatalf("unexpected error body: %+v", env.Error)
	}

	rec, _ = doRequest(t, router, http.MethodGet, "/v1/fantasy-leagues", "expired", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for rejected token, got %d", rec.Code)
	}
}

func TestRouter_ForbiddenHidesDetail(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "owner-1", "faker")
	leagueID := createLeague(t, router, "owner-1")

	rec, env := doRequest(t, router, http.MethodGet, "/v1/fantasy-leagues/"+leagueID+"/settings", "stranger", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.Error == nil || env.Error.Message != http.StatusText(http.StatusForbidden) {
		t.Fatalf("expected bare forbidden message, got %+v", env.Error)
	}
}

func TestRouter_UnknownLeagueIsNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/v1/fantasy-leagues/missing", "owner-1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.Error == nil || env.Error.Status != "NOT_FOUND" {
		t.Fatalf("unexpected error body: %+v", env.Error)
	}
}

func TestRouter_RejectsInvalidPayloads(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"name":`},
		{name: "unknown field", body: `{"name":"x","number_of_teams":2,"budget":10}`},
		{name: "missing name", body: `{"number_of_teams":2}`},
		{name: "too many teams", body: `{"name":"x","number_of_teams":99}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, router, http.MethodPost, "/v1/fantasy-leagues", "owner-1", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if env.Error == nil || env.Error.Status != "INVALID_ARGUMENT" {
				t.Fatalf("unexpected error body: %+v", env.Error)
			}
		})
	}
}

func TestRouter_InviteAndJoin(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "owner-1", "faker")
	registerUser(t, router, "member-1", "chovy")
	leagueID := createLeague(t, router, "owner-1")

	rec, env := doRequest(t, router, http.MethodPost, "/v1/fantasy-leagues/"+leagueID+"/invites", "owner-1", `{"username":"chovy"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("invite: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.object()["status"] != string(fantasyleague.MembershipPending) {
		t.Fatalf("expected pending membership, got %v", env.object())
	}

	rec, env = doRequest(t, router, http.MethodPost, "/v1/fantasy-leagues/"+leagueID+"/join", "member-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("join: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.object()["status"] != string(fantasyleague.MembershipAccepted) {
		t.Fatalf("expected accepted membership, got %v", env.object())
	}

	rec, _ = doRequest(t, router, http.MethodPost, "/v1/fantasy-leagues/"+leagueID+"/invites", "owner-1", `{"username":"chovy"}`)
	if rec.Code == http.StatusCreated {
		t.Fatalf("expected re-inviting an accepted member to fail")
	}

	rec, _ = doRequest(t, router, http.MethodGet, "/v1/fantasy-leagues/"+leagueID+"/draft-order", "owner-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("draft order: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var order struct {
		Data []draftOrderSlotDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("unmarshal draft order: %v", err)
	}
	if len(order.Data) != 2 || order.Data[0].Username != "faker" || order.Data[1].Position != 2 {
		t.Fatalf("unexpected draft order: %+v", order.Data)
	}
}

func TestRouter_PickupOutsideDraftIsInvalidState(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "owner-1", "faker")
	leagueID := createLeague(t, router, "owner-1")

	rec, env := doRequest(t, router, http.MethodPost, "/v1/fantasy-leagues/"+leagueID+"/teams/me/pickup", "owner-1", `{"player_id":"any"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.Error == nil || env.Error.Status != "FAILED_PRECONDITION" {
		t.Fatalf("unexpected error body: %+v", env.Error)
	}
}

func TestRouter_RostersRejectBadWeek(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/v1/fantasy-leagues/league-1/teams?week=abc", "owner-1", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouter_InternalJobToken(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/v1/internal/jobs/week-rollover", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without job token, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/week-rollover", bytes.NewReader([]byte(`{"dispatch_id":"d-1"}`)))
	req.Header.Set(internalJobTokenHeader, testJobToken)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 with job token, got %d: %s", res.Code, res.Body.String())
	}

	var body struct {
		Data weekRolloverJobResponse `json:"data"`
	}
	if err := sonic.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Data.Result.LeagueCount != 0 || body.Data.Next != nil {
		t.Fatalf("unexpected rollover response: %+v", body.Data)
	}
}

func TestRequireInternalJobToken_NotConfigured(t *testing.T) {
	handler := RequireInternalJobToken("", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/week-rollover", nil)
	req.Header.Set(internalJobTokenHeader, "anything")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestRecoverPanic(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: bad", usecase.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantCode: "INVALID_ARGUMENT"},
		{name: "rule violation", err: fmt.Errorf("%w: full", fantasyleague.ErrMembership), wantStatus: http.StatusBadRequest, wantCode: "FAILED_PRECONDITION"},
		{name: "draft violation", err: fmt.Errorf("%w: It is not your turn to draft", fantasyteam.ErrDraft), wantStatus: http.StatusBadRequest, wantCode: "FAILED_PRECONDITION"},
		{name: "invalid state", err: &usecase.InvalidStateError{LeagueID: "l", Actual: fantasyleague.StatusActive}, wantStatus: http.StatusConflict, wantCode: "FAILED_PRECONDITION"},
		{name: "already exists", err: fmt.Errorf("%w: taken", usecase.ErrAlreadyExists), wantStatus: http.StatusConflict, wantCode: "ALREADY_EXISTS"},
		{name: "user exists", err: fmt.Errorf("create: %w", user.ErrAlreadyExists), wantStatus: http.StatusConflict, wantCode: "ALREADY_EXISTS"},
		{name: "forbidden", err: usecase.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: "PERMISSION_DENIED"},
		{name: "league not found", err: fmt.Errorf("%w: league=x", fantasyleague.ErrLeagueNotFound), wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "user not found", err: user.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "unauthorized", err: usecase.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHENTICATED"},
		{name: "dependency", err: fmt.Errorf("%w: anubis down", usecase.ErrDependencyUnavailable), wantStatus: http.StatusServiceUnavailable, wantCode: "UNAVAILABLE"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(t.Context(), tt.err)
			if got.HTTPStatus != tt.wantStatus || got.Status != tt.wantCode {
				t.Fatalf("mapError(%v) = %d %s, want %d %s", tt.err, got.HTTPStatus, got.Status, tt.wantStatus, tt.wantCode)
			}
		})
	}
}

func TestResolveClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	if got := resolveClientIP(req); got != "10.0.0.1" {
		t.Fatalf("expected remote addr host, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := resolveClientIP(req); got != "203.0.113.7" {
		t.Fatalf("expected first forwarded address, got %q", got)
	}
}
