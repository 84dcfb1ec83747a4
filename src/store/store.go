package store

import (
	"context"
	"errors"
	"time"

	"fintrack-server/src/models"
)

// ErrNotFound is returned by every store when the requested record does not
// exist. Callers map it to a 404.
var ErrNotFound = errors.New("record not found")

type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// TransactionStore persists transactions and answers the aggregate queries the
// services are built on. List results are always ordered by date ascending.
type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	FindByID(ctx context.Context, id int64) (*models.Transaction, error)
	FindByUser(ctx context.Context, userID int64) ([]models.Transaction, error)
	FindByUserAndType(ctx context.Context, userID int64, txType string) ([]models.Transaction, error)
	DeleteByID(ctx context.Context, id int64) error

	// SumByType totals amounts of one transaction type for a user.
	SumByType(ctx context.Context, userID int64, txType string) (float64, error)
	// SumExpensesByDay totals expense amounts per calendar day, keyed
	// YYYY-MM-DD, for transactions dated on or after since.
	SumExpensesByDay(ctx context.Context, userID int64, since time.Time) (map[string]float64, error)
	// SumExpensesByCategory totals expense amounts per category.
	SumExpensesByCategory(ctx context.Context, userID int64) (map[string]float64, error)
	// SumByCategorySince totals amounts of every transaction type in a
	// category dated on or after since.
	SumByCategorySince(ctx context.Context, userID int64, category string, since time.Time) (float64, error)
}

type BudgetStore interface {
	Create(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	FindByID(ctx context.Context, id int64) (*models.Budget, error)
	FindByUser(ctx context.Context, userID int64) ([]models.Budget, error)
	DeleteByID(ctx context.Context, id int64) error
}
