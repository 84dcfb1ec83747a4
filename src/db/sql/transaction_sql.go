package db

import (
	"context"
	"errors"
	"time"

	"fintrack-server/src/models"
	"fintrack-server/src/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionStore struct {
	pool *pgxpool.Pool
}

func NewTransactionStore(pool *pgxpool.Pool) *TransactionStore {
	return &TransactionStore{pool: pool}
}

func (s *TransactionStore) Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, amount, type, category, description, date)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, NOW()))
		RETURNING id, user_id, amount, type, category, description, date, created_at
	`
	var date *time.Time
	if !tx.Date.IsZero() {
		date = &tx.Date
	}
	var t models.Transaction
	err := s.pool.QueryRow(ctx, query, tx.UserID, tx.Amount, tx.Type, tx.Category, tx.Description, date).
		Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Category, &t.Description, &t.Date, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TransactionStore) FindByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, type, category, description, date, created_at
		FROM transactions WHERE id = $1
	`
	var t models.Transaction
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Category, &t.Description, &t.Date, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *TransactionStore) FindByUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, type, category, description, date, created_at
		FROM transactions WHERE user_id = $1
		ORDER BY date ASC
	`
	return s.queryTransactions(ctx, query, userID)
}

func (s *TransactionStore) FindByUserAndType(ctx context.Context, userID int64, txType string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, type, category, description, date, created_at
		FROM transactions WHERE user_id = $1 AND type = $2
		ORDER BY date ASC
	`
	return s.queryTransactions(ctx, query, userID, txType)
}

func (s *TransactionStore) DeleteByID(ctx context.Context, id int64) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *TransactionStore) SumByType(ctx context.Context, userID int64, txType string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions WHERE user_id = $1 AND type = $2
	`
	var total float64
	err := s.pool.QueryRow(ctx, query, userID, txType).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *TransactionStore) SumExpensesByDay(ctx context.Context, userID int64, since time.Time) (map[string]float64, error) {
	query := `
		SELECT to_char(date, 'YYYY-MM-DD') AS day, SUM(amount)
		FROM transactions
		WHERE user_id = $1 AND type = 'expense' AND date >= $2
		GROUP BY day
	`
	rows, err := s.pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var day string
		var total float64
		if err := rows.Scan(&day, &total); err != nil {
			return nil, err
		}
		totals[day] = total
	}
	return totals, rows.Err()
}

func (s *TransactionStore) SumExpensesByCategory(ctx context.Context, userID int64) (map[string]float64, error) {
	query := `
		SELECT category, SUM(amount)
		FROM transactions
		WHERE user_id = $1 AND type = 'expense'
		GROUP BY category
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, err
		}
		totals[category] = total
	}
	return totals, rows.Err()
}

func (s *TransactionStore) SumByCategorySince(ctx context.Context, userID int64, category string, since time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category = $2 AND date >= $3
	`
	var total float64
	err := s.pool.QueryRow(ctx, query, userID, category, since).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *TransactionStore) queryTransactions(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Category, &t.Description, &t.Date, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
