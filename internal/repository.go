package internal

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/bakehouse/sales-etl/internal/model"
	"github.com/bakehouse/sales-etl/migrations"
)

const (
	locationFields = "id, name, square_id"
	salesFields    = "item_name, sale_price, qty, sale_timestamp, month, day_of_week, item_category, location_id, modifiers"

	salesColumnCount = 9
	insertChunkSize  = 100
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

var weekdays = map[string]struct{}{
	"Monday": {}, "Tuesday": {}, "Wednesday": {}, "Thursday": {},
	"Friday": {}, "Saturday": {}, "Sunday": {},
}

type IRepository interface {
	TestConnection(context.Context) bool
	GetAllLocations(context.Context) ([]model.Location, error)
	GetLocationBySquareID(context.Context, string) (model.Location, error)
	BulkInsertSalesRecords(context.Context, []model.SalesRecord) (int, error)
	DeleteSalesByMonth(ctx context.Context, locationID int, month string, confirm bool) (int64, error)
	GetSalesCountByLocation(context.Context, int) (int, error)
	GetSalesDateRange(context.Context, int) (string, string, error)
}

type Repository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

// NewRepository opens a Postgres connection through the pgx stdlib driver
// and applies the embedded goose migrations.
func NewRepository(dsn string, logger *zap.SugaredLogger) (*Repository, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, err
	}
	if err := goose.Up(db, "."); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &Repository{DB: db, Logger: logger}, nil
}

func (r Repository) Close() error {
	return r.DB.Close()
}

func (r Repository) TestConnection(ctx context.Context) bool {
	var one int
	err := r.DB.QueryRowContext(ctx, "SELECT 1").Scan(&one)
	if err != nil {
		r.Logger.Errorf("database connection test failed: %v", err)
		return false
	}
	return one == 1
}

func (r Repository) GetAllLocations(ctx context.Context) ([]model.Location, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+locationFields+" FROM locations ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []model.Location
	for rows.Next() {
		var l model.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.SquareID); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.Logger.Infof("retrieved %d locations", len(locations))
	return locations, nil
}

func (r Repository) GetLocationBySquareID(ctx context.Context, squareID string) (model.Location, error) {
	var l model.Location
	err := r.DB.QueryRowContext(ctx, "SELECT "+locationFields+" FROM locations WHERE square_id = $1", squareID).
		Scan(&l.ID, &l.Name, &l.SquareID)
	if err == sql.ErrNoRows {
		return model.Location{}, ErrNoRecords
	}
	if err != nil {
		return model.Location{}, err
	}
	return l, nil
}

// BulkInsertSalesRecords writes all records in one transaction, in
// multi-row INSERT pages of 100. Either everything for the location
// commits or nothing does. An empty input performs no database call.
func (r Repository) BulkInsertSalesRecords(ctx context.Context, records []model.SalesRecord) (int, error) {
	if len(records) == 0 {
		r.Logger.Warn("no sales records to insert")
		return 0, nil
	}

	for i := range records {
		if err := validateSalesRecord(records[i]); err != nil {
			return 0, fmt.Errorf("record %d: %w", i, err)
		}
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for start := 0; start < len(records); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(records) {
			end = len(records)
		}
		chunk := records[start:end]

		query, args := buildSalesInsert(chunk)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("bulk insert: %w", err)
		}
		inserted += len(chunk)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	r.Logger.Infof("inserted %d sales records", inserted)
	return inserted, nil
}

// DeleteSalesByMonth removes one location-month of sales data. Without the
// confirm flag it is a no-op returning 0; this is the only correction
// mechanism for a re-run that duplicated rows.
func (r Repository) DeleteSalesByMonth(ctx context.Context, locationID int, month string, confirm bool) (int64, error) {
	if !confirm {
		r.Logger.Warn("delete not confirmed, no records deleted")
		return 0, nil
	}

	res, err := r.DB.ExecContext(ctx, "DELETE FROM sales WHERE location_id = $1 AND month = $2", locationID, month)
	if err != nil {
		return 0, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	r.Logger.Warnf("deleted %d sales records for location %d, month %s", deleted, locationID, month)
	return deleted, nil
}

func (r Repository) GetSalesCountByLocation(ctx context.Context, locationID int) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM sales WHERE location_id = $1", locationID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetSalesDateRange returns the earliest and latest sale dates for a
// location, or ErrNoRecords when it has no data yet.
func (r Repository) GetSalesDateRange(ctx context.Context, locationID int) (string, string, error) {
	var earliest, latest sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT MIN(sale_timestamp)::date::text, MAX(sale_timestamp)::date::text FROM sales WHERE location_id = $1",
		locationID).Scan(&earliest, &latest)
	if err != nil {
		return "", "", err
	}
	if !earliest.Valid || !latest.Valid {
		return "", "", ErrNoRecords
	}
	return earliest.String, latest.String, nil
}

func validateSalesRecord(rec model.SalesRecord) error {
	if rec.ItemName == "" {
		return fmt.Errorf("%w: item_name", ErrMalformedRecord)
	}
	if rec.Qty <= 0 {
		return fmt.Errorf("%w: qty must be positive", ErrMalformedRecord)
	}
	if rec.SalePrice.IsNegative() {
		return fmt.Errorf("%w: sale_price must not be negative", ErrMalformedRecord)
	}
	if rec.SaleTimestamp.IsZero() {
		return fmt.Errorf("%w: sale_timestamp", ErrMalformedRecord)
	}
	if !monthPattern.MatchString(rec.Month) {
		return fmt.Errorf("%w: month %q", ErrMalformedRecord, rec.Month)
	}
	if _, ok := weekdays[rec.DayOfWeek]; !ok {
		return fmt.Errorf("%w: day_of_week %q", ErrMalformedRecord, rec.DayOfWeek)
	}
	return nil
}

func buildSalesInsert(records []model.SalesRecord) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO sales (" + salesFields + ") VALUES ")

	args := make([]interface{}, 0, len(records)*salesColumnCount)
	for i, rec := range records {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * salesColumnCount
		sb.WriteString("(")
		for col := 1; col <= salesColumnCount; col++ {
			if col > 1 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", base+col)
		}
		sb.WriteString(")")

		args = append(args,
			rec.ItemName, rec.SalePrice, rec.Qty, rec.SaleTimestamp,
			rec.Month, rec.DayOfWeek, rec.ItemCategory, rec.LocationID, rec.Modifiers,
		)
	}

	return sb.String(), args
}
