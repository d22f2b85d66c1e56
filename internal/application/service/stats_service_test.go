package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ventaspos/ledger-api/internal/domain/entity"
)

func sale(day string, customer string, total float64, snapshot string) entity.SaleRecord {
	created, err := time.ParseInLocation("2006-01-02 15:04", day, time.Local)
	if err != nil {
		panic(err)
	}
	return entity.SaleRecord{
		CustomerName:    customer,
		TotalAmount:     total,
		PaymentSnapshot: snapshot,
		CreatedAt:       created,
	}
}

func TestFilterSales_DateRange(t *testing.T) {
	sales := []entity.SaleRecord{
		sale("2026-01-10 09:00", "Ana", 10, "Efectivo: $10.00"),
		sale("2026-01-15 23:59", "Bruno", 20, "Efectivo: $20.00"),
		sale("2026-01-20 00:00", "Carla", 30, "Efectivo: $30.00"),
	}

	got := FilterSales(sales, SaleFilter{StartDate: "2026-01-15", EndDate: "2026-01-15"})

	require.Len(t, got, 1)
	assert.Equal(t, "Bruno", got[0].CustomerName)

	// Bounds are inclusive on both ends.
	got = FilterSales(sales, SaleFilter{StartDate: "2026-01-10", EndDate: "2026-01-20"})
	assert.Len(t, got, 3)
}

func TestFilterSales_CustomerSubstringCaseInsensitive(t *testing.T) {
	sales := []entity.SaleRecord{
		sale("2026-01-10 09:00", "Ana Garcia", 10, ""),
		sale("2026-01-11 09:00", "Bruno", 20, ""),
	}

	got := FilterSales(sales, SaleFilter{Customer: "gArCi"})

	require.Len(t, got, 1)
	assert.Equal(t, "Ana Garcia", got[0].CustomerName)
}

func TestFilterSales_MethodMatchesCleanedSnapshot(t *testing.T) {
	sales := []entity.SaleRecord{
		sale("2026-01-10 09:00", "Ana", 10, "CARD|Visa: $10.00"),
		sale("2026-01-11 09:00", "Bruno", 20, "CASH|Efectivo: $20.00"),
	}

	// The filter sees the cleaned rendering, so "visa" matches but the raw
	// type tag "CARD" does not.
	assert.Len(t, FilterSales(sales, SaleFilter{Method: "visa"}), 1)
	assert.Empty(t, FilterSales(sales, SaleFilter{Method: "CARD"}))
}

func TestFilterSales_SortsNewestFirstWithoutMutatingInput(t *testing.T) {
	sales := []entity.SaleRecord{
		sale("2026-01-10 09:00", "Ana", 10, ""),
		sale("2026-01-12 09:00", "Carla", 30, ""),
		sale("2026-01-11 09:00", "Bruno", 20, ""),
	}

	got := FilterSales(sales, SaleFilter{})

	require.Len(t, got, 3)
	assert.Equal(t, "Carla", got[0].CustomerName)
	assert.Equal(t, "Bruno", got[1].CustomerName)
	assert.Equal(t, "Ana", got[2].CustomerName)

	// Input order is untouched.
	assert.Equal(t, "Ana", sales[0].CustomerName)
	assert.Equal(t, "Carla", sales[1].CustomerName)
}

func TestFilterSales_ExcludingRangeYieldsEmpty(t *testing.T) {
	sales := []entity.SaleRecord{
		sale("2026-01-10 09:00", "Ana", 10, "Efectivo: $10.00"),
	}

	got := FilterSales(sales, SaleFilter{StartDate: "2030-01-01"})
	assert.Empty(t, got)

	stats := AggregateStats(got)
	assert.Zero(t, stats.TotalSales)
	assert.Zero(t, stats.Count)
	assert.Zero(t, stats.AvgTicket)
	assert.NotNil(t, stats.ByMethod)
	assert.NotNil(t, stats.ByMethodGrouped)
	assert.NotNil(t, stats.TopCustomers)
	assert.Empty(t, stats.TopCustomers)
}

func TestAggregateStats_SplitPayment(t *testing.T) {
	sales := []entity.SaleRecord{
		sale("2026-01-10 09:00", "Ana", 75.50, "CASH|Efectivo: $50.00, CARD|Visa: $25.50"),
	}

	stats := AggregateStats(sales)

	assert.Equal(t, 75.50, stats.TotalSales)
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 75.50, stats.AvgTicket)
	assert.Equal(t, 50.00, stats.ByMethod["Efectivo"])
	assert.Equal(t, 25.50, stats.ByMethod["Visa"])
	assert.Equal(t, 50.00, stats.ByMethodGrouped["Efectivo"]["Efectivo"])
	assert.Equal(t, 25.50, stats.ByMethodGrouped["Tarjeta / POS"]["Visa"])
}

func TestAggregateStats_EmptySnapshotStillCounts(t *testing.T) {
	sales := []entity.SaleRecord{
		sale("2026-01-10 09:00", "Ana", 40, ""),
		sale("2026-01-11 09:00", "Bruno", 60, "Efectivo: $60.00"),
	}

	stats := AggregateStats(sales)

	// A sale with no decodable components contributes to the totals but not
	// to any method bucket.
	assert.Equal(t, 100.0, stats.TotalSales)
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 50.0, stats.AvgTicket)
	assert.Len(t, stats.ByMethod, 1)
	assert.Equal(t, 60.0, stats.ByMethod["Efectivo"])
}

func TestAggregateStats_TopCustomers(t *testing.T) {
	sales := []entity.SaleRecord{
		sale("2026-01-10 09:00", "Ana", 100, ""),
		sale("2026-01-10 10:00", "", 500, ""),
		sale("2026-01-10 11:00", "Bruno", 200, ""),
		sale("2026-01-10 12:00", "Ana", 150, ""),
		sale("2026-01-10 13:00", "Carla", 50, ""),
	}

	stats := AggregateStats(sales)

	require.Len(t, stats.TopCustomers, 3)
	assert.Equal(t, CustomerRank{Name: "Desconocido", Count: 1, Total: 500}, stats.TopCustomers[0])
	assert.Equal(t, CustomerRank{Name: "Ana", Count: 2, Total: 250}, stats.TopCustomers[1])
	assert.Equal(t, CustomerRank{Name: "Bruno", Count: 1, Total: 200}, stats.TopCustomers[2])
}

func TestAggregateStats_TopCustomersTieKeepsFirstSeen(t *testing.T) {
	sales := []entity.SaleRecord{
		sale("2026-01-10 09:00", "Bruno", 100, ""),
		sale("2026-01-10 10:00", "Ana", 100, ""),
	}

	stats := AggregateStats(sales)

	require.Len(t, stats.TopCustomers, 2)
	assert.Equal(t, "Bruno", stats.TopCustomers[0].Name)
	assert.Equal(t, "Ana", stats.TopCustomers[1].Name)
}

func TestAggregateStats_Idempotent(t *testing.T) {
	sales := []entity.SaleRecord{
		sale("2026-01-10 09:00", "Ana", 75.50, "CASH|Efectivo: $50.00, CARD|Visa: $25.50"),
		sale("2026-01-11 09:00", "Bruno", 30, "Transferencia: $30.00"),
	}

	first := AggregateStats(sales)
	second := AggregateStats(sales)

	assert.Equal(t, first, second)
}

func TestMethodNames_DistinctSorted(t *testing.T) {
	sales := []entity.SaleRecord{
		sale("2026-01-10 09:00", "Ana", 75.50, "CASH|Efectivo: $50.00, CARD|Visa: $25.50"),
		sale("2026-01-11 09:00", "Bruno", 20, "CASH|Efectivo: $20.00"),
		sale("2026-01-12 09:00", "Carla", 30, "TRANSFER|Banco Galicia: $30.00"),
	}

	assert.Equal(t, []string{"Banco Galicia", "Efectivo", "Visa"}, MethodNames(sales))
}
