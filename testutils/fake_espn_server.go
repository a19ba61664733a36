package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

//go:embed espndata
var espndata embed.FS

// FakeESPNServer serves the canned leagueHistory and players payloads
// from espndata/. The roster view is told apart from the draft view by
// the view query parameter, as the real API does.
type FakeESPNServer struct {
	s        *httptest.Server
	requests atomic.Int64
}

func NewFakeESPNServer() *FakeESPNServer {
	f := &FakeESPNServer{}

	r := chi.NewRouter()
	r.Route("/apis/v3/games/ffl", func(r chi.Router) {
		r.Get("/leagueHistory/{leagueID}", f.leagueHistoryHandler)
		r.Get("/seasons/{season}/players", f.playersHandler)
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeESPNServer) Close() {
	f.s.Close()
}

func (f *FakeESPNServer) URL() string {
	return f.s.URL
}

// Requests reports how many API calls reached the server, so cache
// tests can assert the network was skipped.
func (f *FakeESPNServer) Requests() int {
	return int(f.requests.Load())
}

func (f *FakeESPNServer) leagueHistoryHandler(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)

	views := r.URL.Query()["view"]
	for _, v := range views {
		if v == "mRoster" {
			serveFile(w, "rosters.json")
			return
		}
	}
	serveFile(w, "draft_history.json")
}

func (f *FakeESPNServer) playersHandler(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)
	serveFile(w, "players.json")
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := espndata.ReadFile(fmt.Sprintf("espndata/%s", name))
	if err != nil {
		log.Printf("error reading espndata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
