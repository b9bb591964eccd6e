// Package report flattens domain entities into export payloads.
package report

import (
	"strings"

	"github.com/tallyhq/tally/internal/export"
	"github.com/tallyhq/tally/internal/model"
)

const dateLayout = "2006-01-02"

// FromProducts builds a records payload from an inventory listing.
func FromProducts(products []model.Product, categories []model.Category) export.Payload {
	names := make(map[int]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	records := make([]*export.Record, 0, len(products))
	for _, p := range products {
		records = append(records, export.NewRecord().
			Set("ID", p.ID).
			Set("Name", p.Name).
			Set("SKU", p.SKU).
			Set("Category", names[p.CategoryID]).
			Set("Price", p.Price.StringFixed(2)).
			Set("Stock", p.Stock).
			Set("Active", p.Active).
			Set("Created", p.CreatedAt.Format(dateLayout)))
	}
	return export.NewRecords(records).WithTitle("Product Inventory")
}

// FromCategories builds a records payload from the category list.
func FromCategories(categories []model.Category) export.Payload {
	records := make([]*export.Record, 0, len(categories))
	for _, c := range categories {
		records = append(records, export.NewRecord().
			Set("ID", c.ID).
			Set("Name", c.Name).
			Set("Description", c.Description).
			Set("Products", c.ProductNum))
	}
	return export.NewRecords(records).WithTitle("Categories")
}

// FromExpenseCategories builds a records payload from the expense categories.
func FromExpenseCategories(categories []model.ExpenseCategory) export.Payload {
	records := make([]*export.Record, 0, len(categories))
	for _, c := range categories {
		records = append(records, export.NewRecord().
			Set("ID", c.ID).
			Set("Name", c.Name))
	}
	return export.NewRecords(records).WithTitle("Expense Categories")
}

// FromSchemas builds a records payload from the dynamic field schemas.
func FromSchemas(schemas []model.FieldSchema) export.Payload {
	records := make([]*export.Record, 0, len(schemas))
	for _, s := range schemas {
		records = append(records, export.NewRecord().
			Set("ID", s.ID).
			Set("Name", s.Name).
			Set("Label", s.Label).
			Set("Type", s.Type).
			Set("Required", s.Required).
			Set("Options", strings.Join(s.Options, "; ")))
	}
	return export.NewRecords(records).WithTitle("Product Field Schemas")
}

// FromSalesSummary builds a key/value payload with the report totals.
func FromSalesSummary(s *model.SalesSummary) export.Payload {
	pairs := export.NewRecord().
		Set("Period Start", s.From.Format(dateLayout)).
		Set("Period End", s.To.Format(dateLayout)).
		Set("Total Sales", s.TotalSales.StringFixed(2)).
		Set("Total Expenses", s.TotalExpenses.StringFixed(2)).
		Set("Net Profit", s.NetProfit.StringFixed(2)).
		Set("Orders", s.OrderCount)
	return export.NewKeyValue(pairs).WithTitle("Sales Summary")
}

// FromSalesLines builds a records payload with the per-category breakdown.
func FromSalesLines(s *model.SalesSummary) export.Payload {
	records := make([]*export.Record, 0, len(s.Lines))
	for _, line := range s.Lines {
		records = append(records, export.NewRecord().
			Set("Category", line.Category).
			Set("Amount", line.Amount.StringFixed(2)).
			Set("Orders", line.Orders).
			Set("Units Sold", line.UnitsSold))
	}
	return export.NewRecords(records).WithTitle("Sales by Category")
}
