package mux

import (
	"net/http"

	"goldenflower-server/pkg/playable"
	"goldenflower-server/pkg/playable/goldenflower"
	"goldenflower-server/pkg/room"
)

type tableResponse struct {
	*room.Table
	State *goldenflower.Response `json:"state"`
}

func tableWithState(dealer *room.Dealer, playerID int64) (*tableResponse, error) {
	state, err := dealer.State(playerID)
	if err != nil {
		return nil, err
	}

	return &tableResponse{
		Table: dealer.Table(),
		State: state.Data.(*goldenflower.Response),
	}, nil
}

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.pitBoss.Tables())
	}
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// anything the client leaves out comes from the configuration
		cfg := room.TableConfig{
			AutomatedSeats: m.cfg.Game.AutomatedSeats,
			StartingChips:  m.cfg.Game.StartingChips,
			Difficulty:     m.cfg.Game.Difficulty,
		}

		if !decodeRequest(w, r, &cfg) {
			return
		}

		// providers cannot be set over HTTP
		cfg.Providers = nil

		dealer, err := m.pitBoss.OpenTable(cfg)
		if err != nil {
			writeGameError(w, err)
			return
		}

		resp, err := tableWithState(dealer, room.HumanPlayerID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

func (m *Mux) getTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)

		playerID := room.HumanPlayerID
		if r.FormValue("spectate") == "true" {
			playerID = 0
		}

		resp, err := tableWithState(dealer, playerID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) deleteTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
		if !m.pitBoss.CloseTable(dealer.Table().UUID) {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		writeJSON(w, http.StatusOK, playable.OK())
	}
}

func (m *Mux) postTableUUIDStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
		if err := dealer.StartHand(); err != nil {
			writeGameError(w, err)
			return
		}

		resp, err := tableWithState(dealer, room.HumanPlayerID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) postTableUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)

		var payload playable.PayloadIn
		if !decodeRequest(w, r, &payload) {
			return
		}

		if _, err := dealer.Action(room.HumanPlayerID, &payload); err != nil {
			writeGameError(w, err)
			return
		}

		resp, err := tableWithState(dealer, room.HumanPlayerID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) getTableUUIDLogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
		logs, err := dealer.Logs()
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, logs)
	}
}
