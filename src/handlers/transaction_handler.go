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

func AddTransaction(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Amount      float64    `json:"amount"`
			Type        string     `json:"type"`
			Category    string     `json:"category"`
			Description string     `json:"description"`
			Date        *time.Time `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Errorf("Failed to decode add transaction request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		in := service.AddTransactionInput{
			Amount:      req.Amount,
			Type:        req.Type,
			Category:    req.Category,
			Description: req.Description,
		}
		if req.Date != nil {
			in.Date = *req.Date
		}

		created, err := svc.Add(r.Context(), userID, in)
		if err != nil {
			writeServiceError(w, err, userID)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"message":     "Transaction added successfully",
			"transaction": created,
		})
	}
}

func GetAllTransactions(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		transactions, err := svc.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, userID)
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		writeJSON(w, http.StatusOK, transactions)
	}
}

func GetTransactionsByType(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		txType := chi.URLParam(r, "type")
		transactions, err := svc.ListByType(r.Context(), userID, txType)
		if err != nil {
			writeServiceError(w, err, userID)
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		writeJSON(w, http.StatusOK, transactions)
	}
}

func DeleteTransaction(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		idStr := chi.URLParam(r, "transactionId")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			logrus.Errorf("Invalid transaction id param: %s", idStr)
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		deleted, err := svc.Delete(r.Context(), userID, id)
		if err != nil {
			writeServiceError(w, err, userID)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message":     "Transaction deleted successfully",
			"transaction": deleted,
		})
	}
}

func GetBalance(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		balance, err := svc.Balance(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, userID)
			return
		}
		writeJSON(w, http.StatusOK, balance)
	}
}

func GetWeeklyExpense(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		weekly, err := svc.WeeklyExpense(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, userID)
			return
		}
		writeJSON(w, http.StatusOK, weekly)
	}
}

func GetCategoryWiseExpense(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		categories, err := svc.CategoryWiseExpense(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, userID)
			return
		}
		writeJSON(w, http.StatusOK, categories)
	}
}
