package models

import "time"

type Budget struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Amount    float64    `json:"amount"`
	Category  string     `json:"category"`
	Date      *time.Time `json:"date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// BudgetStatus is one budget with its remaining amount, computed on read.
type BudgetStatus struct {
	Category        string    `json:"category"`
	RemainingAmount float64   `json:"remainingAmount"`
	OriginalAmount  float64   `json:"originalAmount"`
	CreatedAt       time.Time `json:"createdAt"`
}

type BudgetRemaining struct {
	Category        string  `json:"category"`
	RemainingAmount float64 `json:"remainingAmount"`
	OriginalAmount  float64 `json:"originalAmount"`
}
