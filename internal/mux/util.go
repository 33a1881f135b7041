package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"goldenflower-server/pkg/playable/goldenflower"
	"goldenflower-server/pkg/room"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

// writeGameError picks the status code for an error from a table
func writeGameError(w http.ResponseWriter, err error) {
	var actionErr goldenflower.InvalidActionError
	var cfgErr goldenflower.ConfigurationError

	switch {
	case errors.Is(err, room.ErrShiftEnded):
		writeJSONError(w, http.StatusNotFound, err)
	case errors.Is(err, goldenflower.ErrHandInProgress):
		writeJSONError(w, http.StatusConflict, err)
	case errors.As(err, &actionErr),
		errors.As(err, &cfgErr),
		errors.Is(err, goldenflower.ErrUnknownAction),
		errors.Is(err, goldenflower.ErrPlayerNotFound):
		writeJSONError(w, http.StatusBadRequest, err)
	default:
		writeJSONError(w, http.StatusInternalServerError, err)
	}
}
