package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/vats-app/vats-api/internal/domain/sport"
	"github.com/vats-app/vats-api/internal/domain/user"
	"github.com/vats-app/vats-api/internal/infrastructure/repository/memory"
	"github.com/vats-app/vats-api/internal/usecase"
)

const testAdminToken = "admin-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	rosterRepo := memory.NewRosterRepository(memory.SeedSelections())
	scoreRepo := memory.NewScoreRepository(memory.SeedScores())
	dir := memory.NewDirectory(memory.SeedUsers())

	handler := NewHandler(
		usecase.NewLeaderboardService(dir, rosterRepo, scoreRepo, nil, nil),
		usecase.NewRosterService(rosterRepo),
		usecase.NewScoreService(scoreRepo, nil, nil),
		usecase.NewSportService(nil),
		nil,
	)

	verifier := stubVerifier{principal: user.Principal{UserID: "user-001"}}
	return NewRouter(handler, verifier, nil, []string{"*"}, testAdminToken)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestRouter_Healthz(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/healthz", "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_ListSports(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/sports", "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].([]any)
	if len(data) != 6 {
		t.Fatalf("expected 6 sports, got %d", len(data))
	}
	first, _ := data[0].(map[string]any)
	if got, _ := first["sport"].(string); got != "football" {
		t.Fatalf("unexpected first sport: %v", first["sport"])
	}
}

func TestRouter_GetLeaderboard(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/leaderboard/football", "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["sport"].(string); got != "football" {
		t.Fatalf("unexpected sport: %v", data["sport"])
	}
	rows, _ := data["userScores"].([]any)
	if len(rows) != 3 {
		t.Fatalf("unexpected row count: %d", len(rows))
	}
	top, _ := rows[0].(map[string]any)
	if got, _ := top["userId"].(string); got != "user-002" {
		t.Fatalf("unexpected leader: %v", top["userId"])
	}
	if got, _ := top["totalPoints"].(float64); got != 185 {
		t.Fatalf("unexpected leader points: %v", top["totalPoints"])
	}
}

func TestRouter_GetLeaderboard_UnknownSportEchoesConfig(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/leaderboard/curling", "", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	errorObj, _ := body["error"].(map[string]any)
	items, _ := errorObj["errors"].([]any)
	item, _ := items[0].(map[string]any)
	if got, _ := item["reason"].(string); got != "sportNotConfigured" {
		t.Fatalf("unexpected reason: %v", item["reason"])
	}

	data, _ := body["data"].(map[string]any)
	cfg, _ := data["sportsConfig"].([]any)
	if len(cfg) != 6 {
		t.Fatalf("expected sport config alongside the error, got %v", body["data"])
	}
}

func TestRouter_GetSelections_RequiresAuth(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/selections/football", "", nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_GetSelections(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/selections/football", "",
		map[string]string{"Authorization": "Bearer token-abc"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["userId"].(string); got != "user-001" {
		t.Fatalf("unexpected user: %v", data["userId"])
	}
	picks, _ := data["picks"].([]any)
	if len(picks) != 2 {
		t.Fatalf("unexpected pick count: %d", len(picks))
	}
	if got, _ := data["perkAdjustment"].(float64); got != 5 {
		t.Fatalf("unexpected perk: %v", data["perkAdjustment"])
	}
}

func TestRouter_SaveSelections(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/v1/selections/baseball",
		`{"picks":[{"teamId":"lsu"},{"teamId":"tennessee"}]}`,
		map[string]string{"Authorization": "Bearer token-abc"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	picks, _ := data["picks"].([]any)
	if len(picks) != 2 {
		t.Fatalf("unexpected pick count: %d", len(picks))
	}
	first, _ := picks[0].(map[string]any)
	if got, _ := first["sport"].(string); got != "baseball" {
		t.Fatalf("saved picks must carry the sport, got %v", first["sport"])
	}

	// The save is visible on a follow-up read.
	rec = doRequest(t, router, http.MethodGet, "/v1/selections/baseball", "",
		map[string]string{"Authorization": "Bearer token-abc"})
	body = decodeEnvelope(t, rec)
	data, _ = body["data"].(map[string]any)
	picks, _ = data["picks"].([]any)
	if len(picks) != 2 {
		t.Fatalf("saved picks not readable: %d", len(picks))
	}
}

func TestRouter_SaveSelections_BadPayload(t *testing.T) {
	router := newTestRouter(t)
	auth := map[string]string{"Authorization": "Bearer token-abc"}

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"picks":`},
		{"unknown field", `{"picks":[],"bogus":true}`},
		{"missing picks", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPut, "/v1/selections/football", tt.body, auth)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouter_UpsertScore_RequiresAdminToken(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodPut, "/v1/internal/scores",
		`{"teamId":"alabama","sport":"football"}`, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_UpsertScore_Achievements(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/v1/internal/scores",
		`{"teamId":"alabama","sport":"football","achievements":{"wins":11,"regularSeasonChampion":true,"cfpWins":1}}`,
		map[string]string{"X-Admin-Token": testAdminToken})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["regularSeasonPoints"].(float64); got != 65 {
		t.Fatalf("unexpected derived regular season points: %v", data["regularSeasonPoints"])
	}
	if got, _ := data["postseasonPoints"].(float64); got != 15 {
		t.Fatalf("unexpected derived postseason points: %v", data["postseasonPoints"])
	}
	if got, _ := data["totalPoints"].(float64); got != 80 {
		t.Fatalf("unexpected total: %v", data["totalPoints"])
	}
	if got, _ := data["schoolName"].(string); got != "Alabama" {
		t.Fatalf("catalog backfill missing: %v", data["schoolName"])
	}
}

func TestRouter_ImportScores(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/internal/scores/import",
		`{"rows":[{"teamId":"texas","sport":"football","regularSeasonPoints":40},{"teamId":"","sport":"football"}]}`,
		map[string]string{"X-Admin-Token": testAdminToken})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["total"].(float64); got != 2 {
		t.Fatalf("unexpected total: %v", data["total"])
	}
	if got, _ := data["successCount"].(float64); got != 1 {
		t.Fatalf("unexpected success count: %v", data["successCount"])
	}
	if got, _ := data["failedCount"].(float64); got != 1 {
		t.Fatalf("unexpected failed count: %v", data["failedCount"])
	}
	if got, _ := data["runId"].(string); got == "" {
		t.Fatalf("expected a run id, got %v", data["runId"])
	}
}

func TestRouter_ImportScores_EmptyRows(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodPost, "/v1/internal/scores/import",
		`{"rows":[]}`, map[string]string{"X-Admin-Token": testAdminToken})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_SavePerkAdjustment(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/v1/internal/perks",
		`{"userId":"user-002","sport":"softball","delta":-10}`,
		map[string]string{"X-Admin-Token": testAdminToken})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// The perk shows up in the sport's leaderboard.
	rec = doRequest(t, router, http.MethodGet, "/v1/leaderboard/"+sport.Softball, "", nil)
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	rows, _ := data["userScores"].([]any)
	for _, raw := range rows {
		row, _ := raw.(map[string]any)
		if row["userId"] == "user-002" {
			if got, _ := row["perkAdjustment"].(float64); got != -10 {
				t.Fatalf("perk not reflected: %v", row["perkAdjustment"])
			}
			if got, _ := row["totalPoints"].(float64); got != 145 {
				t.Fatalf("unexpected softball total: %v", row["totalPoints"])
			}
			return
		}
	}
	t.Fatal("user-002 missing from softball leaderboard")
}
