package mux

import (
	"context"
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"goldenflower-server/internal/config"
	"goldenflower-server/pkg/room"
)

type ctxKey int

const (
	ctxDealerKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	cfg     config.Config
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux using the loaded configuration
func NewMux(version string) *Mux {
	cfg := config.Instance()
	pitBoss := room.NewPitBoss(logrus.StandardLogger(), cfg.GameOptions())
	pitBoss.StartShift()

	return newMux(version, cfg, pitBoss)
}

func newMux(version string, cfg config.Config, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		cfg:     cfg,
		version: version,
		pitBoss: pitBoss,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
	r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())

	tr := r.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	tr.Use(this.tableMiddleware)

	tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
	tr.Methods(http.MethodDelete).Path("").Handler(this.deleteTableUUID())
	tr.Methods(http.MethodPost).Path("/start").Handler(this.postTableUUIDStart())
	tr.Methods(http.MethodPost).Path("/action").Handler(this.postTableUUIDAction())
	tr.Methods(http.MethodGet).Path("/logs").Handler(this.getTableUUIDLogs())
	tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())

	return this
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := strings.ToLower(gmux.Vars(r)["uuid"])
		dealer, ok := m.pitBoss.Dealer(uuid)
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxDealerKey, dealer)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
