package db

import (
	"context"
	"errors"

	"fintrack-server/src/models"
	"fintrack-server/src/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BudgetStore struct {
	pool *pgxpool.Pool
}

func NewBudgetStore(pool *pgxpool.Pool) *BudgetStore {
	return &BudgetStore{pool: pool}
}

func (s *BudgetStore) Create(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (user_id, amount, category, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, amount, category, date, created_at
	`
	var b models.Budget
	err := s.pool.QueryRow(ctx, query, budget.UserID, budget.Amount, budget.Category, budget.Date).
		Scan(&b.ID, &b.UserID, &b.Amount, &b.Category, &b.Date, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BudgetStore) FindByID(ctx context.Context, id int64) (*models.Budget, error) {
	query := `
		SELECT id, user_id, amount, category, date, created_at
		FROM budgets WHERE id = $1
	`
	var b models.Budget
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&b.ID, &b.UserID, &b.Amount, &b.Category, &b.Date, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (s *BudgetStore) FindByUser(ctx context.Context, userID int64) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, amount, category, date, created_at
		FROM budgets WHERE user_id = $1
		ORDER BY created_at ASC
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		err := rows.Scan(&b.ID, &b.UserID, &b.Amount, &b.Category, &b.Date, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func (s *BudgetStore) DeleteByID(ctx context.Context, id int64) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
