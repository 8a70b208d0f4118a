package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/sports", handler.ListSports)
	mux.HandleFunc("GET /v1/leaderboard/{sport}", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/scores/{sport}", handler.ListScores)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/selections/{sport}", RequireAuth(verifier, http.HandlerFunc(handler.GetMySelections)))
	mux.Handle("PUT /v1/selections/{sport}", RequireAuth(verifier, http.HandlerFunc(handler.SaveMySelections)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("PUT /v1/internal/scores", RequireAdminToken(adminToken, http.HandlerFunc(handler.UpsertScore)))
	mux.Handle("POST /v1/internal/scores/import", RequireAdminToken(adminToken, http.HandlerFunc(handler.ImportScores)))
	mux.Handle("PUT /v1/internal/perks", RequireAdminToken(adminToken, http.HandlerFunc(handler.SavePerkAdjustment)))
}
