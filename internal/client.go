package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/bakehouse/sales-etl/internal/model"
)

const (
	searchOrdersPath    = "/orders/search"
	orderStateCompleted = "COMPLETED"
	sortFieldClosedAt   = "CLOSED_AT"
	sortOrderAscending  = "ASC"

	searchPageSize = 100
	// Test mode truncates retrieval for cheap manual verification.
	testModePageCap = 2
)

// Square wants RFC3339 with microsecond precision on date-time filters.
const apiTimeLayout = "2006-01-02T15:04:05.000000Z07:00"

type IOrderClient interface {
	FetchOrders(ctx context.Context, squareLocationID string, locationID int, startDate, endDate string) ([]model.Order, error)
}

// SquareClient fetches closed orders through the Square search endpoint,
// authenticating with the location's own token when one is configured.
type SquareClient struct {
	client         *http.Client
	baseURL        string
	defaultToken   string
	locationTokens map[int]string
	testMode       bool
	logger         *zap.SugaredLogger
}

func NewSquareClient(baseURL, defaultToken string, locationTokens map[int]string, testMode bool, logger *zap.SugaredLogger) *SquareClient {
	return &SquareClient{
		client:         &http.Client{},
		baseURL:        baseURL,
		defaultToken:   defaultToken,
		locationTokens: locationTokens,
		testMode:       testMode,
		logger:         logger,
	}
}

// FetchOrders returns every COMPLETED order closed between startDate and
// endDate (inclusive, full days in Chicago local time), in the provider's
// closed-at ascending order. Pages are followed strictly sequentially via
// the continuation cursor; a failing page aborts the whole fetch.
func (c *SquareClient) FetchOrders(ctx context.Context, squareLocationID string, locationID int, startDate, endDate string) ([]model.Order, error) {
	startAt, err := DayWindowUTC(startDate, false)
	if err != nil {
		return nil, err
	}
	endAt, err := DayWindowUTC(endDate, true)
	if err != nil {
		return nil, err
	}

	token := c.token(locationID)

	var orders []model.Order
	cursor := ""
	pages := 0

	for {
		req := model.SearchOrdersRequest{
			LocationIDs: []string{squareLocationID},
			Query: model.SearchOrdersQuery{
				Filter: model.SearchOrdersFilter{
					StateFilter: model.StateFilter{States: []string{orderStateCompleted}},
					DateTimeFilter: model.DateTimeFilter{
						ClosedAt: model.TimeRange{
							StartAt: startAt.Format(apiTimeLayout),
							EndAt:   endAt.Format(apiTimeLayout),
						},
					},
				},
				Sort: model.SearchOrdersSort{
					SortField: sortFieldClosedAt,
					SortOrder: sortOrderAscending,
				},
			},
			Limit:  searchPageSize,
			Cursor: cursor,
		}

		res, err := c.searchPage(ctx, token, req)
		if err != nil {
			return nil, err
		}

		orders = append(orders, res.Orders...)
		pages++

		if res.Cursor == "" {
			break
		}
		if c.testMode && pages >= testModePageCap {
			c.logger.Infof("test mode: stopping after %d pages for location %s", pages, squareLocationID)
			break
		}
		cursor = res.Cursor
	}

	c.logger.Infof("fetched %d orders for location %s (%d pages)", len(orders), squareLocationID, pages)
	return orders, nil
}

func (c *SquareClient) searchPage(ctx context.Context, token string, body model.SearchOrdersRequest) (*model.SearchOrdersResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchOrdersPath, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search orders request failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: res.StatusCode, Body: string(raw)}
	}

	out := new(model.SearchOrdersResponse)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("decode search orders response: %w", err)
	}
	return out, nil
}

func (c *SquareClient) token(locationID int) string {
	if t, ok := c.locationTokens[locationID]; ok {
		return t
	}
	return c.defaultToken
}
