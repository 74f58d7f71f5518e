package model

// Wire types for the Square Orders API. Amounts are in minor currency
// units (cents); Square sends quantity as a string.

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

type Modifier struct {
	Name           string `json:"name"`
	BasePriceMoney *Money `json:"base_price_money,omitempty"`
}

type LineItem struct {
	Name            string     `json:"name"`
	Quantity        string     `json:"quantity"`
	VariationName   string     `json:"variation_name,omitempty"`
	BasePriceMoney  *Money     `json:"base_price_money,omitempty"`
	GrossSalesMoney *Money     `json:"gross_sales_money,omitempty"`
	Modifiers       []Modifier `json:"modifiers,omitempty"`
}

type Order struct {
	ID         string     `json:"id"`
	LocationID string     `json:"location_id"`
	ClosedAt   string     `json:"closed_at,omitempty"`
	LineItems  []LineItem `json:"line_items,omitempty"`
}

type TimeRange struct {
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

type DateTimeFilter struct {
	ClosedAt TimeRange `json:"closed_at"`
}

type StateFilter struct {
	States []string `json:"states"`
}

type SearchOrdersFilter struct {
	StateFilter    StateFilter    `json:"state_filter"`
	DateTimeFilter DateTimeFilter `json:"date_time_filter"`
}

type SearchOrdersSort struct {
	SortField string `json:"sort_field"`
	SortOrder string `json:"sort_order"`
}

type SearchOrdersQuery struct {
	Filter SearchOrdersFilter `json:"filter"`
	Sort   SearchOrdersSort   `json:"sort"`
}

type SearchOrdersRequest struct {
	LocationIDs []string          `json:"location_ids"`
	Query       SearchOrdersQuery `json:"query"`
	Limit       int               `json:"limit"`
	Cursor      string            `json:"cursor,omitempty"`
}

type SearchOrdersResponse struct {
	Orders []Order `json:"orders"`
	Cursor string  `json:"cursor,omitempty"`
}
