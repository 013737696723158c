package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

// registerClubRoutes mounts the club endpoints under /teams and the /club
// aliases. Every route requires the shared api key.
func registerClubRoutes(mux *http.ServeMux, handler *Handler, apiKey string) {
	auth := func(h http.HandlerFunc) http.Handler {
		return RequireAPIKey(apiKey, h)
	}

	for _, prefix := range []string{"/teams", "/club"} {
		mux.Handle("GET "+prefix+"/{team}", auth(handler.GetClub))
		mux.Handle("GET "+prefix+"/stats/{team}", auth(handler.GetClubStats))
		mux.Handle("GET "+prefix+"/players/{team}", auth(handler.ListPlayers))
		mux.Handle("PATCH "+prefix+"/info/{club}", auth(handler.UpdateClub))
		mux.Handle("DELETE "+prefix+"/players/{player}", auth(handler.DeletePlayer))
	}
	mux.Handle("POST /teams/club/{club}", auth(handler.RefreshClub))
}
