package entity

import "github.com/google/uuid"

// The report types below are read models for the admin dashboard. Each one
// is the row shape of a single grouped aggregation query.

// BrandStock summarizes catalog size and available stock per brand.
type BrandStock struct {
	Brand         string
	TotalProducts int64
	TotalStock    int64
}

// CategoryPrice is the average product price within a category.
type CategoryPrice struct {
	Category     string
	AveragePrice float64
}

// StockStatusCount counts products that are in stock vs. out of stock.
type StockStatusCount struct {
	Status string
	Count  int64
}

// OrderStatusCount counts orders per lifecycle status.
type OrderStatusCount struct {
	Status     OrderStatus
	TotalOrder int64
}

// LocationOrderCount counts orders per delivery location.
type LocationOrderCount struct {
	Location    string
	TotalOrders int64
}

// TopSellingProduct ranks products by total ordered quantity.
type TopSellingProduct struct {
	ProductID   uuid.UUID
	ProductName string
	TotalSold   int64
}
