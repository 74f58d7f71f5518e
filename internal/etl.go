package internal

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/bakehouse/sales-etl/internal/model"
)

// ETL orchestrates one batch run: connectivity check, date-range and
// location resolution, then a strictly sequential fetch-transform-load
// pass per location.
type ETL struct {
	client      IOrderClient
	transformer *Transformer
	repo        IRepository
	cfg         *Config
	logger      *zap.SugaredLogger

	now func() time.Time
}

func NewETL(client IOrderClient, transformer *Transformer, repo IRepository, cfg *Config, logger *zap.SugaredLogger) *ETL {
	return &ETL{
		client:      client,
		transformer: transformer,
		repo:        repo,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// Run executes the whole batch. It returns an error only for run-fatal
// conditions (storage unreachable, no locations, location query failure);
// per-location failures land in the report instead.
func (e *ETL) Run(ctx context.Context) (*model.RunReport, error) {
	started := time.Now()

	e.logger.Info("testing database connection")
	if !e.repo.TestConnection(ctx) {
		return nil, ErrStorageUnavailable
	}

	startDate, endDate := e.dateRange()

	locations, err := e.repo.GetAllLocations(ctx)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, ErrNoLocations
	}

	report := &model.RunReport{
		StartDate: startDate,
		EndDate:   endDate,
		TestMode:  e.cfg.TestMode,
	}

	e.logger.Infof("starting run: %s to %s, %d locations, test mode %t",
		startDate, endDate, len(locations), e.cfg.TestMode)

	for _, loc := range locations {
		result := e.processLocation(ctx, loc, startDate, endDate)
		report.Locations = append(report.Locations, result)
		report.TotalOrders += result.OrdersFetched
		report.TotalRowsInserted += result.RowsInserted
		if !result.Success {
			report.FailedLocations++
		}
	}

	report.Duration = time.Since(started)
	e.logSummary(report)
	return report, nil
}

// dateRange prefers an explicit START_DATE/END_DATE pair from the
// environment and otherwise targets the previous calendar month. A lone or
// inconsistent override falls back with a warning.
func (e *ETL) dateRange() (string, string) {
	start, end := e.cfg.StartDate, e.cfg.EndDate

	if start != "" && end != "" {
		if ValidateDateRange(start, end) {
			e.logger.Infof("using custom date range: %s to %s", start, end)
			return start, end
		}
		e.logger.Warnf("invalid date range %s to %s, falling back to previous month", start, end)
	} else if start != "" || end != "" {
		e.logger.Warn("both START_DATE and END_DATE must be set, falling back to previous month")
	}

	return CalculatePreviousMonthRange(e.now())
}

// processLocation never lets an error escape: one bad token or malformed
// order set degrades to a failed entry in the report, not a dead run.
func (e *ETL) processLocation(ctx context.Context, loc model.Location, startDate, endDate string) model.LocationResult {
	result := model.LocationResult{LocationID: loc.ID, LocationName: loc.Name}

	e.logger.Infof("processing %s (id %d, square %s)", loc.Name, loc.ID, loc.SquareID)

	orders, err := e.client.FetchOrders(ctx, loc.SquareID, loc.ID, startDate, endDate)
	if err != nil {
		return e.failLocation(result, err)
	}
	result.OrdersFetched = len(orders)

	if len(orders) == 0 {
		e.logger.Infof("no orders found for %s", loc.Name)
		result.Success = true
		return result
	}

	records, failedOrders := e.transformer.TransformOrders(orders, loc.ID)
	result.RecordsCreated = len(records)
	result.FailedOrders = failedOrders

	if len(records) == 0 {
		e.logger.Infof("no sales records created for %s", loc.Name)
		result.Success = true
		return result
	}

	inserted, err := e.repo.BulkInsertSalesRecords(ctx, records)
	if err != nil {
		return e.failLocation(result, err)
	}
	result.RowsInserted = inserted
	result.Success = true

	e.logger.Infof("%s done: %d orders -> %d records -> %d rows", loc.Name, result.OrdersFetched, result.RecordsCreated, inserted)
	return result
}

func (e *ETL) failLocation(result model.LocationResult, err error) model.LocationResult {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		result.Err = "square api error: " + err.Error()
	case errors.Is(err, ErrValidation), errors.Is(err, ErrDateFormat), errors.Is(err, ErrMalformedRecord):
		result.Err = "validation error: " + err.Error()
	default:
		result.Err = "unexpected error: " + err.Error()
	}

	e.logger.Errorf("%s failed: %s", result.LocationName, result.Err)
	return result
}

func (e *ETL) logSummary(report *model.RunReport) {
	e.logger.Info("===== run summary =====")
	for _, res := range report.Locations {
		if res.Success {
			e.logger.Infof("OK      %s: %d orders, %d records, %d rows inserted",
				res.LocationName, res.OrdersFetched, res.RecordsCreated, res.RowsInserted)
		} else {
			e.logger.Errorf("FAILED  %s: %s", res.LocationName, res.Err)
		}
	}
	e.logger.Infof("date range: %s to %s (test mode %t)", report.StartDate, report.EndDate, report.TestMode)
	e.logger.Infof("locations: %d processed, %d failed", len(report.Locations), report.FailedLocations)
	e.logger.Infof("totals: %d orders fetched, %d rows inserted in %.2fs",
		report.TotalOrders, report.TotalRowsInserted, report.Duration.Seconds())

	if report.Success() {
		e.logger.Info("run completed successfully")
	} else {
		e.logger.Warnf("run completed with %d failed locations", report.FailedLocations)
	}
}
