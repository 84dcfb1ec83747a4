package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fintrack-server/src/service"
	"fintrack-server/src/store"

	"github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeServiceError maps a service error onto the HTTP status taxonomy:
// validation 400, wrong owner 401, missing record 404, anything else a
// generic 500 logged server-side.
func writeServiceError(w http.ResponseWriter, err error, userID int64) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Reason, http.StatusBadRequest)
	case errors.Is(err, service.ErrNotOwner):
		http.Error(w, "not allowed", http.StatusUnauthorized)
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		logrus.Errorf("Unexpected error for user %d: %v", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
