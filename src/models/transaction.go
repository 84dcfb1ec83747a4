package models

import "time"

// Transaction types. Stored lowercase; anything else is rejected at the
// service boundary.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type Transaction struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

type Balance struct {
	Balance float64 `json:"balance"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type DayExpense struct {
	Day          string  `json:"day"`
	TotalExpense float64 `json:"totalExpense"`
}

type WeeklyExpense struct {
	ExpensesPerDay []DayExpense `json:"expensesPerDay"`
	TotalExpense   float64      `json:"totalExpense"`
}

type CategoryExpense struct {
	Category     string  `json:"category"`
	TotalExpense float64 `json:"totalExpense"`
}
