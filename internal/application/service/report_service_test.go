package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ventaspos/ledger-api/internal/domain/entity"
)

func TestFlattenMethodAmounts_OrderedByLabelThenMethod(t *testing.T) {
	stats := AggregateStats([]entity.SaleRecord{
		sale("2026-01-10 09:00", "Ana", 75.50, "CASH|Efectivo: $50.00, CARD|Visa: $25.50"),
		sale("2026-01-11 09:00", "Bruno", 30, "CARD|Mastercard: $30.00"),
	})

	rows := flattenMethodAmounts(stats.ByMethodGrouped)

	require.Len(t, rows, 3)
	assert.Equal(t, entity.ReportMethodAmount{TypeLabel: "Efectivo", Method: "Efectivo", Amount: 50.00}, rows[0])
	assert.Equal(t, entity.ReportMethodAmount{TypeLabel: "Tarjeta / POS", Method: "Mastercard", Amount: 30.00}, rows[1])
	assert.Equal(t, entity.ReportMethodAmount{TypeLabel: "Tarjeta / POS", Method: "Visa", Amount: 25.50}, rows[2])
}

func TestFormatSalesReport_Preview(t *testing.T) {
	report := &entity.SalesReport{
		Header:      entity.ReportHeader{StoreName: "Almacen Centro", Phone: "11-5555-0000"},
		GeneratedAt: "2026-01-31 18:00",
		PeriodStart: "2026-01-01",
		PeriodEnd:   "2026-01-31",
		TotalSales:  105.50,
		Count:       2,
		AvgTicket:   52.75,
		ByMethod: []entity.ReportMethodAmount{
			{TypeLabel: "Efectivo", Method: "Efectivo", Amount: 80.00},
			{TypeLabel: "Tarjeta / POS", Method: "Visa", Amount: 25.50},
		},
		TopCustomers: []entity.ReportCustomer{
			{Name: "Ana", Count: 2, Total: 105.50},
		},
		Transactions: []entity.ReportLine{
			{Date: "2026-01-10 09:00", Customer: "Ana", Payment: "Efectivo: $80.00", Total: 80.00},
		},
	}

	preview := FormatSalesReport(report, 48).Preview()

	assert.Contains(t, preview, "Almacen Centro")
	assert.Contains(t, preview, "REPORTE DE VENTAS")
	assert.Contains(t, preview, "Periodo: 2026-01-01 - 2026-01-31")
	assert.Contains(t, preview, "$105.50")
	assert.Contains(t, preview, "Ticket promedio")
	assert.Contains(t, preview, "$52.75")
	assert.Contains(t, preview, "Tarjeta / POS")
	assert.Contains(t, preview, "Visa")
	assert.Contains(t, preview, "1. Ana (2)")
	assert.Contains(t, preview, "2026-01-10 09:00  Ana")
}
