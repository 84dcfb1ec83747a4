package service

import (
	"context"
	"testing"
	"time"

	"fintrack-server/src/models"
	"fintrack-server/src/store"
	"fintrack-server/src/store/memory"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactionService() (*TransactionService, *memory.Store) {
	mem := memory.New()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewTransactionService(mem.Transactions(), log), mem
}

func addTx(t *testing.T, svc *TransactionService, userID int64, amount float64, txType, category string, date time.Time) *models.Transaction {
	t.Helper()
	tx, err := svc.Add(context.Background(), userID, AddTransactionInput{
		Amount:   amount,
		Type:     txType,
		Category: category,
		Date:     date,
	})
	require.NoError(t, err)
	return tx
}

func TestAddTransaction_NormalizesCasing(t *testing.T) {
	svc, _ := newTransactionService()

	tx, err := svc.Add(context.Background(), 1, AddTransactionInput{
		Amount:   42.50,
		Type:     "EXPENSE",
		Category: "Food",
	})

	require.NoError(t, err)
	assert.Equal(t, "expense", tx.Type)
	assert.Equal(t, "food", tx.Category)
	assert.False(t, tx.Date.IsZero(), "date should default to creation time")
}

func TestAddTransaction_Validation(t *testing.T) {
	svc, _ := newTransactionService()

	tests := []struct {
		name  string
		input AddTransactionInput
	}{
		{"missing amount", AddTransactionInput{Type: "expense", Category: "food"}},
		{"negative amount", AddTransactionInput{Amount: -5, Type: "expense", Category: "food"}},
		{"bad type", AddTransactionInput{Amount: 10, Type: "transfer", Category: "food"}},
		{"empty category", AddTransactionInput{Amount: 10, Type: "income", Category: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), 1, tt.input)
			assert.True(t, IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestListTransactions_OrderedByDate(t *testing.T) {
	svc, _ := newTransactionService()
	now := time.Now()

	addTx(t, svc, 1, 30, "expense", "food", now)
	addTx(t, svc, 1, 10, "income", "salary", now.Add(-48*time.Hour))
	addTx(t, svc, 1, 20, "expense", "transport", now.Add(-24*time.Hour))
	addTx(t, svc, 2, 99, "expense", "food", now) // other user

	list, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 10.0, list[0].Amount)
	assert.Equal(t, 20.0, list[1].Amount)
	assert.Equal(t, 30.0, list[2].Amount)
}

func TestListTransactionsByType(t *testing.T) {
	svc, _ := newTransactionService()
	now := time.Now()

	addTx(t, svc, 1, 100, "income", "salary", now)
	addTx(t, svc, 1, 25, "expense", "food", now)

	incomes, err := svc.ListByType(context.Background(), 1, "INCOME")
	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Equal(t, "income", incomes[0].Type)

	_, err = svc.ListByType(context.Background(), 1, "transfer")
	assert.True(t, IsValidation(err), "invalid type must fail, not return an empty list")
}

func TestDeleteTransaction(t *testing.T) {
	svc, _ := newTransactionService()
	tx := addTx(t, svc, 1, 10, "expense", "food", time.Now())

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Delete(context.Background(), 1, 9999)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("wrong owner leaves record intact", func(t *testing.T) {
		_, err := svc.Delete(context.Background(), 2, tx.ID)
		assert.ErrorIs(t, err, ErrNotOwner)

		list, err := svc.List(context.Background(), 1)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("owner gets deleted record back", func(t *testing.T) {
		deleted, err := svc.Delete(context.Background(), 1, tx.ID)
		require.NoError(t, err)
		assert.Equal(t, tx.ID, deleted.ID)
		assert.Equal(t, 10.0, deleted.Amount)

		list, err := svc.List(context.Background(), 1)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestBalance(t *testing.T) {
	svc, _ := newTransactionService()
	now := time.Now()

	t.Run("no transactions yields zeros", func(t *testing.T) {
		balance, err := svc.Balance(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, &models.Balance{Balance: 0, Income: 0, Expense: 0}, balance)
	})

	t.Run("balance equals income minus expense", func(t *testing.T) {
		addTx(t, svc, 1, 1000, "income", "salary", now)
		addTx(t, svc, 1, 200, "income", "bonus", now)
		addTx(t, svc, 1, 350, "expense", "rent", now)

		balance, err := svc.Balance(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 1200.0, balance.Income)
		assert.Equal(t, 350.0, balance.Expense)
		assert.Equal(t, balance.Income-balance.Expense, balance.Balance)
	})
}

func TestWeeklyExpense(t *testing.T) {
	svc, _ := newTransactionService()
	now := time.Now()

	addTx(t, svc, 1, 40, "expense", "food", now)
	addTx(t, svc, 1, 15, "expense", "transport", now.Add(-3*24*time.Hour))
	addTx(t, svc, 1, 25, "expense", "food", now.Add(-3*24*time.Hour))
	// Outside the window and wrong type, both excluded.
	addTx(t, svc, 1, 500, "expense", "rent", now.Add(-10*24*time.Hour))
	addTx(t, svc, 1, 999, "income", "salary", now)

	weekly, err := svc.WeeklyExpense(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, weekly.ExpensesPerDay, 7, "must cover exactly 7 days")

	// Chronologically ascending, ending today.
	for i := 1; i < len(weekly.ExpensesPerDay); i++ {
		assert.Less(t, weekly.ExpensesPerDay[i-1].Day, weekly.ExpensesPerDay[i].Day)
	}
	assert.Equal(t, now.Format("2006-01-02"), weekly.ExpensesPerDay[6].Day)

	var sum float64
	for _, day := range weekly.ExpensesPerDay {
		sum += day.TotalExpense
	}
	assert.Equal(t, sum, weekly.TotalExpense)
	assert.Equal(t, 80.0, weekly.TotalExpense)
	assert.Equal(t, 40.0, weekly.ExpensesPerDay[6].TotalExpense)
	assert.Equal(t, 40.0, weekly.ExpensesPerDay[3].TotalExpense)
	assert.Equal(t, 0.0, weekly.ExpensesPerDay[0].TotalExpense, "days without expenses report 0")
}

func TestCategoryWiseExpense(t *testing.T) {
	svc, _ := newTransactionService()
	now := time.Now()

	addTx(t, svc, 1, 30, "expense", "food", now)
	addTx(t, svc, 1, 20, "expense", "food", now.Add(-24*time.Hour))
	addTx(t, svc, 1, 12, "expense", "transport", now)
	addTx(t, svc, 1, 1000, "income", "food", now) // income never counted

	categories, err := svc.CategoryWiseExpense(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, categories, 2, "one entry per distinct expense category")
	assert.Equal(t, models.CategoryExpense{Category: "food", TotalExpense: 50}, categories[0])
	assert.Equal(t, models.CategoryExpense{Category: "transport", TotalExpense: 12}, categories[1])
}

func TestCategoryWiseExpense_Empty(t *testing.T) {
	svc, _ := newTransactionService()

	categories, err := svc.CategoryWiseExpense(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, categories)
}
