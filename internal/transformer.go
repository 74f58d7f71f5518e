package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bakehouse/sales-etl/internal/model"
)

// Line items whose name contains one of these (case-insensitive) carry no
// revenue and are dropped from the sales table.
var ignoredItems = []string{
	"dine in",
	"to go",
	"free water",
}

// Transformer flattens Square orders into per-line-item sales records:
// cents become decimal dollars, UTC closed_at becomes Chicago local time,
// and only revenue-generating items and modifiers survive.
type Transformer struct {
	logger *zap.SugaredLogger
}

func NewTransformer(logger *zap.SugaredLogger) *Transformer {
	return &Transformer{logger: logger}
}

// TransformOrder converts one order into zero or more sales records. A
// missing or malformed closed_at fails the whole order; a bad line item is
// skipped and the rest of the order still goes through.
func (t *Transformer) TransformOrder(order model.Order, locationID int) ([]model.SalesRecord, error) {
	if order.ClosedAt == "" {
		return nil, fmt.Errorf("%w: order %s missing closed_at", ErrValidation, order.ID)
	}
	if len(order.LineItems) == 0 {
		t.logger.Debugf("order %s has no line items, skipping", order.ID)
		return nil, nil
	}

	localTS, err := ConvertToChicago(order.ClosedAt)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", order.ID, err)
	}

	// All line items of an order share the closed_at instant, so the
	// derived date fields are computed once.
	month, dayOfWeek := ExtractDateComponents(localTS)

	records := make([]model.SalesRecord, 0, len(order.LineItems))

	for _, li := range order.LineItems {
		if !t.isRevenueItem(li) {
			continue
		}
		if !t.validLineItem(order.ID, li) {
			continue
		}

		qty, err := strconv.Atoi(li.Quantity)
		if err != nil {
			t.logger.Warnf("order %s: item %q has non-integer quantity %q, skipping", order.ID, li.Name, li.Quantity)
			continue
		}
		if li.GrossSalesMoney == nil {
			t.logger.Warnf("order %s: item %q has no gross_sales_money, skipping", order.ID, li.Name)
			continue
		}

		category := li.VariationName
		if category == "" {
			category = "N/A"
		}

		records = append(records, model.SalesRecord{
			ItemName: li.Name,
			// Gross sales, not base price: reported revenue includes
			// modifier upcharges.
			SalePrice:     decimal.New(li.GrossSalesMoney.Amount, -2),
			Qty:           qty,
			SaleTimestamp: localTS,
			Month:         month,
			DayOfWeek:     dayOfWeek,
			ItemCategory:  category,
			LocationID:    locationID,
			Modifiers:     parseModifiers(li),
		})
	}

	t.logger.Debugf("order %s: %d line items -> %d sales records", order.ID, len(order.LineItems), len(records))
	return records, nil
}

// TransformOrders transforms each order independently. Orders that fail
// validation are counted, not fatal; surviving records keep input order.
func (t *Transformer) TransformOrders(orders []model.Order, locationID int) ([]model.SalesRecord, int) {
	var all []model.SalesRecord
	failed := 0

	for _, order := range orders {
		records, err := t.TransformOrder(order, locationID)
		if err != nil {
			t.logger.Errorf("failed to transform order %s: %v", order.ID, err)
			failed++
			continue
		}
		all = append(all, records...)
	}

	t.logger.Infof("batch done: %d orders -> %d sales records (%d failed)", len(orders), len(all), failed)
	return all, failed
}

// isRevenueItem drops zero-priced items and the non-revenue labels from
// ignoredItems. Checked before structural validation.
func (t *Transformer) isRevenueItem(li model.LineItem) bool {
	if li.BasePriceMoney == nil || li.BasePriceMoney.Amount <= 0 {
		t.logger.Debugf("filtering $0 item: %s", li.Name)
		return false
	}

	name := strings.ToLower(li.Name)
	for _, ignored := range ignoredItems {
		if strings.Contains(name, ignored) {
			t.logger.Debugf("filtering ignored item: %s", li.Name)
			return false
		}
	}
	return true
}

func (t *Transformer) validLineItem(orderID string, li model.LineItem) bool {
	if li.Name == "" {
		t.logger.Warnf("order %s: line item missing name, skipping", orderID)
		return false
	}
	if li.Quantity == "" {
		t.logger.Warnf("order %s: item %q missing quantity, skipping", orderID, li.Name)
		return false
	}
	if li.BasePriceMoney == nil {
		t.logger.Warnf("order %s: item %q missing base_price_money, skipping", orderID, li.Name)
		return false
	}

	qty, err := strconv.Atoi(li.Quantity)
	if err != nil || qty <= 0 {
		t.logger.Warnf("order %s: item %q has invalid quantity %q, skipping", orderID, li.Name, li.Quantity)
		return false
	}
	if li.BasePriceMoney.Amount < 0 {
		t.logger.Warnf("order %s: item %q has negative price %d, skipping", orderID, li.Name, li.BasePriceMoney.Amount)
		return false
	}
	return true
}

// parseModifiers joins the names of revenue-generating modifiers (price
// strictly greater than zero) with ", ". No qualifying modifiers yields
// an empty string.
func parseModifiers(li model.LineItem) string {
	var names []string
	for _, m := range li.Modifiers {
		if m.BasePriceMoney != nil && m.BasePriceMoney.Amount > 0 {
			names = append(names, m.Name)
		}
	}
	return strings.Join(names, ", ")
}
