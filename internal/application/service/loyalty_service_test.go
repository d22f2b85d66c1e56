package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ventaspos/ledger-api/internal/domain/entity"
	"github.com/ventaspos/ledger-api/internal/domain/enum"
)

func completedSale(day string, customerID *uuid.UUID, total float64) entity.SaleRecord {
	s := sale(day+" 12:00", "", total, "")
	s.CustomerID = customerID
	s.Status = enum.SaleStatusCompleted
	return s
}

func TestBuildCustomerMetrics_MergesCompletedSales(t *testing.T) {
	ana := entity.Customer{ID: uuid.New(), Name: "Ana"}
	bruno := entity.Customer{ID: uuid.New(), Name: "Bruno"}

	sales := []entity.SaleRecord{
		completedSale("2026-01-10", &ana.ID, 100),
		completedSale("2026-01-20", &ana.ID, 50),
		completedSale("2026-01-15", &bruno.ID, 200),
	}

	metrics := BuildCustomerMetrics([]entity.Customer{ana, bruno}, sales)

	require.Len(t, metrics, 2)
	assert.Equal(t, "Bruno", metrics[0].Name)
	assert.Equal(t, 200.0, metrics[0].TotalSpent)
	assert.Equal(t, 1, metrics[0].VisitCount)
	assert.Equal(t, "2026-01-15", metrics[0].LastVisit)
	assert.Equal(t, 200.0, metrics[0].AverageTicket)

	assert.Equal(t, "Ana", metrics[1].Name)
	assert.Equal(t, 150.0, metrics[1].TotalSpent)
	assert.Equal(t, 2, metrics[1].VisitCount)
	assert.Equal(t, "2026-01-20", metrics[1].LastVisit)
	assert.Equal(t, 75.0, metrics[1].AverageTicket)
}

func TestBuildCustomerMetrics_IgnoresNonQualifyingSales(t *testing.T) {
	ana := entity.Customer{ID: uuid.New(), Name: "Ana"}

	pending := completedSale("2026-01-10", &ana.ID, 100)
	pending.Status = enum.SaleStatusPending
	canceled := completedSale("2026-01-11", &ana.ID, 100)
	canceled.Status = enum.SaleStatusCanceled
	walkIn := completedSale("2026-01-12", nil, 100)

	metrics := BuildCustomerMetrics([]entity.Customer{ana}, []entity.SaleRecord{pending, canceled, walkIn})

	require.Len(t, metrics, 1)
	assert.Zero(t, metrics[0].TotalSpent)
	assert.Zero(t, metrics[0].VisitCount)
	assert.Zero(t, metrics[0].AverageTicket)
	assert.Equal(t, "", metrics[0].LastVisit)
}

func TestBuildCustomerMetrics_ZeroSalesCustomerStillListed(t *testing.T) {
	ana := entity.Customer{ID: uuid.New(), Name: "Ana"}
	bruno := entity.Customer{ID: uuid.New(), Name: "Bruno"}

	sales := []entity.SaleRecord{completedSale("2026-01-10", &ana.ID, 100)}

	metrics := BuildCustomerMetrics([]entity.Customer{ana, bruno}, sales)

	require.Len(t, metrics, 2)
	assert.Equal(t, "Ana", metrics[0].Name)
	assert.Equal(t, "Bruno", metrics[1].Name)
	assert.Equal(t, "", metrics[1].LastVisit)
}

func TestTopSpenders_ExcludesZeroTotals(t *testing.T) {
	ana := entity.Customer{ID: uuid.New(), Name: "Ana"}
	bruno := entity.Customer{ID: uuid.New(), Name: "Bruno"}

	metrics := BuildCustomerMetrics(
		[]entity.Customer{ana, bruno},
		[]entity.SaleRecord{completedSale("2026-01-10", &ana.ID, 100)},
	)

	top := TopSpenders(metrics, 5)

	require.Len(t, top, 1)
	assert.Equal(t, "Ana", top[0].Name)
}

func TestTopSpenders_Limit(t *testing.T) {
	customers := make([]entity.Customer, 0, 8)
	sales := make([]entity.SaleRecord, 0, 8)
	for i := 0; i < 8; i++ {
		c := entity.Customer{ID: uuid.New(), Name: "C"}
		customers = append(customers, c)
		sales = append(sales, completedSale("2026-01-10", &customers[i].ID, float64(10*(i+1))))
	}

	metrics := BuildCustomerMetrics(customers, sales)

	assert.Len(t, TopSpenders(metrics, 3), 3)
	// A non-positive limit falls back to the default of 5.
	assert.Len(t, TopSpenders(metrics, 0), 5)
	assert.Equal(t, 80.0, TopSpenders(metrics, 1)[0].TotalSpent)
}

func TestBuildCustomerMetrics_TieBreaksByCustomerID(t *testing.T) {
	a := entity.Customer{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Name: "Zoe"}
	b := entity.Customer{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Name: "Ana"}

	sales := []entity.SaleRecord{
		completedSale("2026-01-10", &a.ID, 100),
		completedSale("2026-01-10", &b.ID, 100),
	}

	metrics := BuildCustomerMetrics([]entity.Customer{a, b}, sales)

	require.Len(t, metrics, 2)
	assert.Equal(t, "Ana", metrics[0].Name)
	assert.Equal(t, "Zoe", metrics[1].Name)
}
