package test_test

import (
	"context"
	"errors"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/bakehouse/sales-etl/internal"
	"github.com/bakehouse/sales-etl/internal/model"
)

func validRecord(name string) model.SalesRecord {
	return model.SalesRecord{
		ItemName:      name,
		SalePrice:     decimal.RequireFromString("6.65"),
		Qty:           1,
		SaleTimestamp: time.Date(2025, time.October, 3, 9, 15, 0, 0, time.UTC),
		Month:         "2025-10",
		DayOfWeek:     "Friday",
		ItemCategory:  "N/A",
		LocationID:    1,
		Modifiers:     "",
	}
}

var _ = Describe("Repository", func() {
	var (
		repo internal.IRepository
		mock sqlmock.Sqlmock
	)

	BeforeEach(func() {
		db, m, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())
		mock = m

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo = internal.Repository{
			DB:     db,
			Logger: logger.Sugar(),
		}
	})

	AfterEach(func() {
		err := mock.ExpectationsWereMet()
		Expect(err).ShouldNot(HaveOccurred())
	})

	Context("TestConnection", func() {
		It("reports success when SELECT 1 answers", func() {
			rows := sqlmock.NewRows([]string{"?column?"}).AddRow(1)
			mock.ExpectQuery("SELECT 1").WillReturnRows(rows)

			Expect(repo.TestConnection(context.Background())).Should(BeTrue())
		})

		It("reports failure on a query error", func() {
			mock.ExpectQuery("SELECT 1").WillReturnError(errors.New("connection refused"))

			Expect(repo.TestConnection(context.Background())).Should(BeFalse())
		})
	})

	Context("GetAllLocations", func() {
		It("returns locations ordered by id", func() {
			rows := sqlmock.NewRows([]string{"id", "name", "square_id"}).
				AddRow(1, "Downtown", "SQ-A").
				AddRow(2, "Uptown", "SQ-B")

			mock.ExpectQuery("SELECT (.+) FROM locations ORDER BY id").
				WillReturnRows(rows).RowsWillBeClosed()

			locations, err := repo.GetAllLocations(context.Background())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(locations).Should(HaveLen(2))
			Expect(locations[0].Name).Should(Equal("Downtown"))
			Expect(locations[1].SquareID).Should(Equal("SQ-B"))
		})

		It("propagates query errors", func() {
			mock.ExpectQuery("SELECT (.+) FROM locations ORDER BY id").
				WillReturnError(errors.New("some error"))

			_, err := repo.GetAllLocations(context.Background())
			Expect(err).Should(HaveOccurred())
		})
	})

	Context("GetLocationBySquareID", func() {
		It("finds a location", func() {
			rows := sqlmock.NewRows([]string{"id", "name", "square_id"}).
				AddRow(1, "Downtown", "SQ-A")

			mock.ExpectQuery("SELECT (.+) FROM locations WHERE square_id = \\$1").
				WithArgs("SQ-A").WillReturnRows(rows)

			loc, err := repo.GetLocationBySquareID(context.Background(), "SQ-A")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(loc.ID).Should(Equal(1))
		})

		It("returns ErrNoRecords for an unknown id", func() {
			mock.ExpectQuery("SELECT (.+) FROM locations WHERE square_id = \\$1").
				WithArgs("SQ-X").WillReturnRows(sqlmock.NewRows([]string{"id", "name", "square_id"}))

			_, err := repo.GetLocationBySquareID(context.Background(), "SQ-X")
			Expect(err).Should(Equal(internal.ErrNoRecords))
		})
	})

	Context("BulkInsertSalesRecords", func() {
		It("inserts all records in one committed transaction", func() {
			records := []model.SalesRecord{validRecord("Croissant"), validRecord("Latte")}

			mock.ExpectBegin()
			mock.ExpectExec("INSERT INTO sales (.+) VALUES (.+)").
				WillReturnResult(sqlmock.NewResult(0, 2))
			mock.ExpectCommit()

			inserted, err := repo.BulkInsertSalesRecords(context.Background(), records)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inserted).Should(Equal(2))
		})

		It("returns 0 without touching the database for an empty batch", func() {
			inserted, err := repo.BulkInsertSalesRecords(context.Background(), nil)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inserted).Should(Equal(0))
		})

		It("rejects a record with a missing required field before any insert", func() {
			bad := validRecord("Croissant")
			bad.ItemName = ""

			_, err := repo.BulkInsertSalesRecords(context.Background(), []model.SalesRecord{bad})
			Expect(err).Should(HaveOccurred())
			Expect(errors.Is(err, internal.ErrMalformedRecord)).Should(BeTrue())
		})

		It("rejects a record with a malformed month label", func() {
			bad := validRecord("Croissant")
			bad.Month = "October 2025"

			_, err := repo.BulkInsertSalesRecords(context.Background(), []model.SalesRecord{bad})
			Expect(err).Should(HaveOccurred())
			Expect(errors.Is(err, internal.ErrMalformedRecord)).Should(BeTrue())
		})

		It("rolls back when the insert fails", func() {
			records := []model.SalesRecord{validRecord("Croissant")}

			mock.ExpectBegin()
			mock.ExpectExec("INSERT INTO sales (.+) VALUES (.+)").
				WillReturnError(errors.New("some error"))
			mock.ExpectRollback()

			_, err := repo.BulkInsertSalesRecords(context.Background(), records)
			Expect(err).Should(HaveOccurred())
		})
	})

	Context("DeleteSalesByMonth", func() {
		It("is a no-op without the confirm flag", func() {
			deleted, err := repo.DeleteSalesByMonth(context.Background(), 1, "2025-10", false)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(deleted).Should(Equal(int64(0)))
		})

		It("deletes the location-month when confirmed", func() {
			mock.ExpectExec("DELETE FROM sales WHERE location_id = \\$1 AND month = \\$2").
				WithArgs(1, "2025-10").WillReturnResult(sqlmock.NewResult(0, 42))

			deleted, err := repo.DeleteSalesByMonth(context.Background(), 1, "2025-10", true)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(deleted).Should(Equal(int64(42)))
		})
	})

	Context("GetSalesCountByLocation", func() {
		It("returns the count", func() {
			rows := sqlmock.NewRows([]string{"count"}).AddRow(7)
			mock.ExpectQuery("SELECT COUNT(.+) FROM sales WHERE location_id = \\$1").
				WithArgs(1).WillReturnRows(rows)

			count, err := repo.GetSalesCountByLocation(context.Background(), 1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(count).Should(Equal(7))
		})
	})

	Context("GetSalesDateRange", func() {
		It("returns the earliest and latest sale dates", func() {
			rows := sqlmock.NewRows([]string{"min", "max"}).AddRow("2025-10-01", "2025-10-31")
			mock.ExpectQuery("SELECT MIN(.+), MAX(.+) FROM sales WHERE location_id = \\$1").
				WithArgs(1).WillReturnRows(rows)

			earliest, latest, err := repo.GetSalesDateRange(context.Background(), 1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(earliest).Should(Equal("2025-10-01"))
			Expect(latest).Should(Equal("2025-10-31"))
		})

		It("returns ErrNoRecords when the location has no data", func() {
			rows := sqlmock.NewRows([]string{"min", "max"}).AddRow(nil, nil)
			mock.ExpectQuery("SELECT MIN(.+), MAX(.+) FROM sales WHERE location_id = \\$1").
				WithArgs(1).WillReturnRows(rows)

			_, _, err := repo.GetSalesDateRange(context.Background(), 1)
			Expect(err).Should(Equal(internal.ErrNoRecords))
		})
	})
})
