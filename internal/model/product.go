// Package model defines the domain types shared across the application.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a single inventory item.
type Product struct {
	CreatedAt  time.Time       `json:"created_at"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	ImageURL   string          `json:"image_url,omitempty"`
	Price      decimal.Decimal `json:"price"`
	ID         int             `json:"id"`
	CategoryID int             `json:"category_id"`
	Stock      int             `json:"stock"`
	Active     bool            `json:"active"`
}

// FieldSchema describes one dynamic product attribute configured by the
// merchant, e.g. a "roast level" dropdown on coffee products.
type FieldSchema struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	ID       int      `json:"id"`
	Required bool     `json:"required"`
}
