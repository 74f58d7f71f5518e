package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is one row of the sales reporting table: a single line item
// flattened out of an order, priced in dollars.
type SalesRecord struct {
	ItemName      string
	SalePrice     decimal.Decimal
	Qty           int
	SaleTimestamp time.Time
	Month         string
	DayOfWeek     string
	ItemCategory  string
	LocationID    int
	Modifiers     string
}

type Location struct {
	ID       int
	Name     string
	SquareID string
}

// LocationResult captures the outcome of one location's fetch-transform-load
// pass. A failed location never aborts the rest of the run.
type LocationResult struct {
	LocationID     int
	LocationName   string
	OrdersFetched  int
	FailedOrders   int
	RecordsCreated int
	RowsInserted   int
	Success        bool
	Err            string
}

type RunReport struct {
	StartDate         string
	EndDate           string
	TestMode          bool
	Locations         []LocationResult
	TotalOrders       int
	TotalRowsInserted int
	FailedLocations   int
	Duration          time.Duration
}

func (r *RunReport) Success() bool {
	return r.FailedLocations == 0
}
