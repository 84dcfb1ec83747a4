package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"fintrack-server/src/models"
	"fintrack-server/src/service"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func CreateBudget(svc *service.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Amount   float64    `json:"amount"`
			Category string     `json:"category"`
			Date     *time.Time `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Errorf("Failed to decode create budget request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		created, err := svc.Create(r.Context(), userID, service.CreateBudgetInput{
			Amount:   req.Amount,
			Category: req.Category,
			Date:     req.Date,
		})
		if err != nil {
			writeServiceError(w, err, userID)
			return
		}

		writeJSON(w, http.StatusOK, created)
	}
}

func GetBudgets(svc *service.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		statuses, err := svc.ListWithRemaining(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, userID)
			return
		}
		writeJSON(w, http.StatusOK, statuses)
	}
}

// GetRemainingBudgets serves the same computation as GetBudgets without the
// creation timestamps. The route spelling is inherited from the public API
// this server replaces.
func GetRemainingBudgets(svc *service.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		statuses, err := svc.ListWithRemaining(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, userID)
			return
		}

		remaining := make([]models.BudgetRemaining, 0, len(statuses))
		for _, status := range statuses {
			remaining = append(remaining, models.BudgetRemaining{
				Category:        status.Category,
				RemainingAmount: status.RemainingAmount,
				OriginalAmount:  status.OriginalAmount,
			})
		}
		writeJSON(w, http.StatusOK, remaining)
	}
}

func DeleteBudget(svc *service.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			logrus.Errorf("Invalid budget id param: %s", idStr)
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			writeServiceError(w, err, userID)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "budget deleted"})
	}
}
