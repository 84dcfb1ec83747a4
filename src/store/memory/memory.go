// Package memory holds an in-memory store used by tests. It implements the
// same store interfaces as the Postgres layer with plain slices and a mutex.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fintrack-server/src/models"
	"fintrack-server/src/store"
)

type Store struct {
	mu           sync.Mutex
	nextID       int64
	users        []models.User
	transactions []models.Transaction
	budgets      []models.Budget
}

func New() *Store {
	return &Store{nextID: 1}
}

func (s *Store) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// -- UserStore --

func (s *Store) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	u.ID = s.id()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	s.users = append(s.users, u)
	return &u, nil
}

func (s *Store) FindUserByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

// Users adapts the store to the store.UserStore interface.
func (s *Store) Users() store.UserStore { return userStore{s} }

type userStore struct{ *Store }

func (s userStore) Create(ctx context.Context, u *models.User) (*models.User, error) {
	return s.CreateUser(ctx, u)
}
func (s userStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return s.FindUserByID(ctx, id)
}
func (s userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.FindUserByEmail(ctx, email)
}

// -- TransactionStore --

type txStore struct{ *Store }

// Transactions adapts the store to the store.TransactionStore interface.
func (s *Store) Transactions() store.TransactionStore { return txStore{s} }

func (s txStore) Create(_ context.Context, tx *models.Transaction) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := *tx
	t.ID = s.id()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.Date.IsZero() {
		t.Date = t.CreatedAt
	}
	s.transactions = append(s.transactions, t)
	return &t, nil
}

func (s txStore) FindByID(_ context.Context, id int64) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.transactions {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s txStore) FindByUser(_ context.Context, userID int64) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(t models.Transaction) bool {
		return t.UserID == userID
	}), nil
}

func (s txStore) FindByUserAndType(_ context.Context, userID int64, txType string) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(t models.Transaction) bool {
		return t.UserID == userID && t.Type == txType
	}), nil
}

func (s txStore) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.transactions {
		if t.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s txStore) SumByType(_ context.Context, userID int64, txType string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, t := range s.transactions {
		if t.UserID == userID && t.Type == txType {
			total += t.Amount
		}
	}
	return total, nil
}

func (s txStore) SumExpensesByDay(_ context.Context, userID int64, since time.Time) (map[string]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	totals := make(map[string]float64)
	for _, t := range s.transactions {
		if t.UserID == userID && t.Type == models.TypeExpense && !t.Date.Before(since) {
			totals[t.Date.Format("2006-01-02")] += t.Amount
		}
	}
	return totals, nil
}

func (s txStore) SumExpensesByCategory(_ context.Context, userID int64) (map[string]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	totals := make(map[string]float64)
	for _, t := range s.transactions {
		if t.UserID == userID && t.Type == models.TypeExpense {
			totals[t.Category] += t.Amount
		}
	}
	return totals, nil
}

func (s txStore) SumByCategorySince(_ context.Context, userID int64, category string, since time.Time) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, t := range s.transactions {
		if t.UserID == userID && t.Category == category && !t.Date.Before(since) {
			total += t.Amount
		}
	}
	return total, nil
}

// filter returns matching transactions ordered by date ascending. Caller must
// hold the mutex.
func (s txStore) filter(keep func(models.Transaction) bool) []models.Transaction {
	var out []models.Transaction
	for _, t := range s.transactions {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// -- BudgetStore --

type budgetStore struct{ *Store }

// Budgets adapts the store to the store.BudgetStore interface.
func (s *Store) Budgets() store.BudgetStore { return budgetStore{s} }

func (s budgetStore) Create(_ context.Context, budget *models.Budget) (*models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := *budget
	b.ID = s.id()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	s.budgets = append(s.budgets, b)
	return &b, nil
}

func (s budgetStore) FindByID(_ context.Context, id int64) (*models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.budgets {
		if b.ID == id {
			b := b
			return &b, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s budgetStore) FindByUser(_ context.Context, userID int64) ([]models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Budget
	for _, b := range s.budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s budgetStore) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.budgets {
		if b.ID == id {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
