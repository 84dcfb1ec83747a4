package service

import (
	"context"
	"strings"
	"time"

	"fintrack-server/src/models"
	"fintrack-server/src/store"

	"github.com/sirupsen/logrus"
)

// BudgetService records per-category budget caps and computes the remaining
// amount per budget on read.
type BudgetService struct {
	budgets      store.BudgetStore
	transactions store.TransactionStore
	log          *logrus.Logger
}

func NewBudgetService(budgets store.BudgetStore, transactions store.TransactionStore, log *logrus.Logger) *BudgetService {
	return &BudgetService{budgets: budgets, transactions: transactions, log: log}
}

type CreateBudgetInput struct {
	Amount   float64
	Category string
	Date     *time.Time
}

// Create validates and stores a new budget. A user may hold several budgets
// for the same category; each is evaluated independently.
func (s *BudgetService) Create(ctx context.Context, userID int64, in CreateBudgetInput) (*models.Budget, error) {
	if in.Amount == 0 {
		return nil, invalidf("amount is required")
	}
	category := strings.ToLower(strings.TrimSpace(in.Category))
	if category == "" {
		return nil, invalidf("category is required")
	}

	created, err := s.budgets.Create(ctx, &models.Budget{
		UserID:   userID,
		Amount:   in.Amount,
		Category: category,
		Date:     in.Date,
	})
	if err != nil {
		return nil, err
	}
	s.log.Infof("Created budget id %d for user %d, category %s", created.ID, userID, created.Category)
	return created, nil
}

// ListWithRemaining returns every budget of the user with its remaining
// amount: the budget cap minus the sum of the user's transactions in the same
// category dated on or after the budget's creation date. The sum counts income
// and expense transactions alike, matching the system this one replaces; see
// DESIGN.md before changing it.
func (s *BudgetService) ListWithRemaining(ctx context.Context, userID int64) ([]models.BudgetStatus, error) {
	budgets, err := s.budgets.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	statuses := make([]models.BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		spent, err := s.transactions.SumByCategorySince(ctx, userID, budget.Category, budget.CreatedAt)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, models.BudgetStatus{
			Category:        budget.Category,
			RemainingAmount: budget.Amount - spent,
			OriginalAmount:  budget.Amount,
			CreatedAt:       budget.CreatedAt,
		})
	}
	return statuses, nil
}

// Delete removes a budget after checking it exists and belongs to the caller.
func (s *BudgetService) Delete(ctx context.Context, userID, id int64) error {
	budget, err := s.budgets.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if budget.UserID != userID {
		return ErrNotOwner
	}
	if err := s.budgets.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Deleted budget id %d for user %d", id, userID)
	return nil
}
