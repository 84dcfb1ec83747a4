package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"fintrack-server/src/models"
	"fintrack-server/src/service"
	"fintrack-server/src/store/memory"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBudgetTestRouter(userID int64) (*chi.Mux, *service.BudgetService, *service.TransactionService) {
	mem := memory.New()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	budgetSvc := service.NewBudgetService(mem.Budgets(), mem.Transactions(), log)
	txSvc := service.NewTransactionService(mem.Transactions(), log)

	r := chi.NewRouter()
	r.Use(authedAs(userID))
	r.Post("/budget/createBudget", CreateBudget(budgetSvc))
	r.Get("/budget/getBudget", GetBudgets(budgetSvc))
	r.Get("/budget/remaningBudget", GetRemainingBudgets(budgetSvc))
	r.Delete("/budget/deleteBudget/{id}", DeleteBudget(budgetSvc))
	return r, budgetSvc, txSvc
}

func TestCreateBudgetHandler(t *testing.T) {
	router, _, _ := newBudgetTestRouter(1)

	rec := doRequest(router, http.MethodPost, "/budget/createBudget",
		`{"amount": 500, "category": "Food"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Budget
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "food", created.Category)
	assert.Equal(t, 500.0, created.Amount)
}

func TestCreateBudgetHandler_MissingFields(t *testing.T) {
	router, _, _ := newBudgetTestRouter(1)

	for _, body := range []string{
		`{"category": "food"}`,
		`{"amount": 500}`,
	} {
		rec := doRequest(router, http.MethodPost, "/budget/createBudget", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestGetBudgetsHandler_Remaining(t *testing.T) {
	router, budgetSvc, txSvc := newBudgetTestRouter(1)

	_, err := budgetSvc.Create(context.Background(), 1, service.CreateBudgetInput{Amount: 500, Category: "food"})
	require.NoError(t, err)
	_, err = txSvc.Add(context.Background(), 1, service.AddTransactionInput{
		Amount: 120, Type: "expense", Category: "food", Date: time.Now().Add(time.Minute),
	})
	require.NoError(t, err)

	rec := doRequest(router, http.MethodGet, "/budget/getBudget", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var statuses []models.BudgetStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &statuses))
	require.Len(t, statuses, 1)
	assert.Equal(t, 380.0, statuses[0].RemainingAmount)
	assert.Equal(t, 500.0, statuses[0].OriginalAmount)
	assert.False(t, statuses[0].CreatedAt.IsZero())

	// The legacy remaining route carries no createdAt field.
	rec = doRequest(router, http.MethodGet, "/budget/remaningBudget", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw, 1)
	assert.NotContains(t, raw[0], "createdAt")
	assert.Equal(t, 380.0, raw[0]["remainingAmount"])
}

func TestDeleteBudgetHandler(t *testing.T) {
	router, budgetSvc, _ := newBudgetTestRouter(1)

	theirs, err := budgetSvc.Create(context.Background(), 2, service.CreateBudgetInput{Amount: 100, Category: "food"})
	require.NoError(t, err)

	rec := doRequest(router, http.MethodDelete, "/budget/deleteBudget/"+itoa(theirs.ID), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(router, http.MethodDelete, "/budget/deleteBudget/424242", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	mine, err := budgetSvc.Create(context.Background(), 1, service.CreateBudgetInput{Amount: 100, Category: "rent"})
	require.NoError(t, err)

	rec = doRequest(router, http.MethodDelete, "/budget/deleteBudget/"+itoa(mine.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "budget deleted"}`, rec.Body.String())
}
