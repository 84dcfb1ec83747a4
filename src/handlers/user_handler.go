package handlers

import (
	"net/http"

	"fintrack-server/src/store"

	"github.com/sirupsen/logrus"
)

func GetUser(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		user, err := users.FindByID(r.Context(), userID)
		if err != nil {
			logrus.Errorf("Failed to get user - user_id: %d: %v", userID, err)
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
