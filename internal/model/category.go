package model

import "time"

// Category groups products for display and reporting.
type Category struct {
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ID          int       `json:"id"`
	ProductNum  int       `json:"product_num"`
}

// ExpenseCategory classifies operating expenses for the sales report.
type ExpenseCategory struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}
