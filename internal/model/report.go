package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary is the result of a sales-summary report query over a date
// range.
type SalesSummary struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	Lines         []SalesLine     `json:"lines"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	OrderCount    int             `json:"order_count"`
}

// SalesLine is the per-category breakdown within a sales summary.
type SalesLine struct {
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Orders    int             `json:"orders"`
	UnitsSold int             `json:"units_sold"`
}
