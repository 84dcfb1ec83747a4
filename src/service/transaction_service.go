package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"fintrack-server/src/models"
	"fintrack-server/src/store"

	"github.com/sirupsen/logrus"
)

// weeklyWindowDays is the number of calendar days, today included, covered by
// the weekly expense report.
const weeklyWindowDays = 7

// TransactionService records income/expense entries and computes the derived
// views over them. All aggregates are recomputed on every read; nothing is
// memoized between requests.
type TransactionService struct {
	store store.TransactionStore
	log   *logrus.Logger
}

func NewTransactionService(s store.TransactionStore, log *logrus.Logger) *TransactionService {
	return &TransactionService{store: s, log: log}
}

type AddTransactionInput struct {
	Amount      float64
	Type        string
	Category    string
	Description string
	Date        time.Time
}

// Add validates and stores a new transaction. Type and category are lowercased
// before storage; the date defaults to now when absent.
func (s *TransactionService) Add(ctx context.Context, userID int64, in AddTransactionInput) (*models.Transaction, error) {
	if in.Amount <= 0 {
		return nil, invalidf("amount must be a positive number")
	}
	txType := strings.ToLower(strings.TrimSpace(in.Type))
	if txType != models.TypeIncome && txType != models.TypeExpense {
		return nil, invalidf("type must be either %q or %q", models.TypeIncome, models.TypeExpense)
	}
	category := strings.ToLower(strings.TrimSpace(in.Category))
	if category == "" {
		return nil, invalidf("category is required")
	}

	created, err := s.store.Create(ctx, &models.Transaction{
		UserID:      userID,
		Amount:      in.Amount,
		Type:        txType,
		Category:    category,
		Description: in.Description,
		Date:        in.Date,
	})
	if err != nil {
		return nil, err
	}
	s.log.Infof("Created transaction id %d for user %d, type %s, category %s", created.ID, userID, created.Type, created.Category)
	return created, nil
}

// List returns all of a user's transactions, date ascending.
func (s *TransactionService) List(ctx context.Context, userID int64) ([]models.Transaction, error) {
	return s.store.FindByUser(ctx, userID)
}

// ListByType returns a user's transactions of a single type, date ascending.
func (s *TransactionService) ListByType(ctx context.Context, userID int64, txType string) ([]models.Transaction, error) {
	txType = strings.ToLower(txType)
	if txType != models.TypeIncome && txType != models.TypeExpense {
		return nil, invalidf("invalid type parameter")
	}
	return s.store.FindByUserAndType(ctx, userID, txType)
}

// Delete removes a transaction after checking it exists and belongs to the
// caller, and returns the deleted record.
func (s *TransactionService) Delete(ctx context.Context, userID, id int64) (*models.Transaction, error) {
	tx, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.UserID != userID {
		return nil, ErrNotOwner
	}
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	s.log.Infof("Deleted transaction id %d for user %d", id, userID)
	return tx, nil
}

// Balance sums income and expense independently. A user with no transactions
// gets an all-zero balance.
func (s *TransactionService) Balance(ctx context.Context, userID int64) (*models.Balance, error) {
	income, err := s.store.SumByType(ctx, userID, models.TypeIncome)
	if err != nil {
		return nil, err
	}
	expense, err := s.store.SumByType(ctx, userID, models.TypeExpense)
	if err != nil {
		return nil, err
	}
	return &models.Balance{
		Balance: income - expense,
		Income:  income,
		Expense: expense,
	}, nil
}

// WeeklyExpense reports expense totals for the 7 calendar days ending today,
// chronologically ascending. Days without expenses report 0, so the result
// always has exactly 7 entries.
func (s *TransactionService) WeeklyExpense(ctx context.Context, userID int64) (*models.WeeklyExpense, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(weeklyWindowDays - 1))

	perDay, err := s.store.SumExpensesByDay(ctx, userID, start)
	if err != nil {
		return nil, err
	}

	result := &models.WeeklyExpense{
		ExpensesPerDay: make([]models.DayExpense, 0, weeklyWindowDays),
	}
	for i := 0; i < weeklyWindowDays; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		total := perDay[day]
		result.ExpensesPerDay = append(result.ExpensesPerDay, models.DayExpense{
			Day:          day,
			TotalExpense: total,
		})
		result.TotalExpense += total
	}
	return result, nil
}

// CategoryWiseExpense groups expense transactions by category. Categories are
// returned sorted by name; only categories with at least one expense appear.
func (s *TransactionService) CategoryWiseExpense(ctx context.Context, userID int64) ([]models.CategoryExpense, error) {
	perCategory, err := s.store.SumExpensesByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.CategoryExpense, 0, len(perCategory))
	for category, total := range perCategory {
		result = append(result, models.CategoryExpense{
			Category:     category,
			TotalExpense: total,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})
	return result, nil
}
