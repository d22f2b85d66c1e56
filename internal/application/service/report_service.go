package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ventaspos/ledger-api/internal/config"
	"github.com/ventaspos/ledger-api/internal/domain/entity"
	"github.com/ventaspos/ledger-api/internal/domain/payment"
	"github.com/ventaspos/ledger-api/pkg/apperror"
	"github.com/ventaspos/ledger-api/pkg/printer"
)

// ReportService composes printable sales reports from the computed Stats
// and the filtered transaction list. It performs no aggregation of its own.
type ReportService struct {
	saleService  *SaleService
	statsService *StatsService
	printer      printer.Printer
	header       entity.ReportHeader
	width        int
}

// NewReportService creates a new report service
func NewReportService(saleService *SaleService, statsService *StatsService, p printer.Printer, cfg config.ReportConfig, width int) *ReportService {
	return &ReportService{
		saleService:  saleService,
		statsService: statsService,
		printer:      p,
		header: entity.ReportHeader{
			StoreName: cfg.StoreName,
			Address:   cfg.Address,
			Phone:     cfg.Phone,
			TaxID:     cfg.TaxID,
		},
		width: width,
	}
}

// BuildSalesReport assembles the report for the ledger subset selected by
// the filter.
func (s *ReportService) BuildSalesReport(ctx context.Context, filter SaleFilter) (*entity.SalesReport, error) {
	stats, err := s.statsService.GetStats(ctx, filter)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleService.ListSales(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &entity.SalesReport{
		Header:       s.header,
		GeneratedAt:  time.Now().Local().Format("2006-01-02 15:04"),
		PeriodStart:  filter.StartDate,
		PeriodEnd:    filter.EndDate,
		TotalSales:   stats.TotalSales,
		Count:        stats.Count,
		AvgTicket:    stats.AvgTicket,
		ByMethod:     flattenMethodAmounts(stats.ByMethodGrouped),
		TopCustomers: make([]entity.ReportCustomer, 0, len(stats.TopCustomers)),
		Transactions: make([]entity.ReportLine, 0, len(sales)),
	}

	for _, rank := range stats.TopCustomers {
		report.TopCustomers = append(report.TopCustomers, entity.ReportCustomer{
			Name:  rank.Name,
			Count: rank.Count,
			Total: rank.Total,
		})
	}

	for _, sale := range sales {
		customer := sale.CustomerName
		if customer == "" {
			customer = unknownCustomer
		}
		report.Transactions = append(report.Transactions, entity.ReportLine{
			Date:     sale.CreatedAt.Local().Format("2006-01-02 15:04"),
			Customer: customer,
			Payment:  payment.Clean(sale.PaymentSnapshot),
			Total:    sale.TotalAmount,
		})
	}

	return report, nil
}

// PrintSalesReport builds the report and sends it to the configured printer.
func (s *ReportService) PrintSalesReport(ctx context.Context, filter SaleFilter) (*entity.SalesReport, error) {
	report, err := s.BuildSalesReport(ctx, filter)
	if err != nil {
		return nil, err
	}

	if !s.printer.IsConnected() {
		return nil, apperror.NewBadRequestError("Printer is not connected")
	}

	doc := FormatSalesReport(report, s.width)
	if err := s.printer.Print(doc.Bytes()); err != nil {
		return nil, fmt.Errorf("print sales report: %w", err)
	}

	return report, nil
}

// flattenMethodAmounts orders the grouped per-method amounts for printing:
// type labels alphabetically, then methods alphabetically within each label.
func flattenMethodAmounts(grouped map[string]map[string]float64) []entity.ReportMethodAmount {
	labels := make([]string, 0, len(grouped))
	for label := range grouped {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	rows := make([]entity.ReportMethodAmount, 0, len(labels))
	for _, label := range labels {
		methods := make([]string, 0, len(grouped[label]))
		for method := range grouped[label] {
			methods = append(methods, method)
		}
		sort.Strings(methods)

		for _, method := range methods {
			rows = append(rows, entity.ReportMethodAmount{
				TypeLabel: label,
				Method:    method,
				Amount:    grouped[label][method],
			})
		}
	}
	return rows
}

// FormatSalesReport renders a sales report as an ESC/POS document.
func FormatSalesReport(report *entity.SalesReport, width int) *printer.Document {
	doc := printer.NewDocument(width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(report.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)
	if report.Header.Address != "" {
		doc.Text(report.Header.Address)
	}
	if report.Header.Phone != "" {
		doc.Text("Tel: " + report.Header.Phone)
	}
	if report.Header.TaxID != "" {
		doc.Text("CUIT: " + report.Header.TaxID)
	}
	doc.LineFeed()

	doc.SetBold(true).Text("REPORTE DE VENTAS").SetBold(false)
	doc.Text(report.GeneratedAt)
	if report.PeriodStart != "" || report.PeriodEnd != "" {
		doc.TextF("Periodo: %s - %s", orDash(report.PeriodStart), orDash(report.PeriodEnd))
	}

	doc.SetAlign(printer.AlignLeft).Separator('=')
	doc.KeyValue("Total vendido", money(report.TotalSales))
	doc.KeyValue("Operaciones", fmt.Sprintf("%d", report.Count))
	doc.KeyValue("Ticket promedio", money(report.AvgTicket))

	if len(report.ByMethod) > 0 {
		doc.Separator('-')
		doc.SetBold(true).Text("Por medio de pago").SetBold(false)
		lastLabel := ""
		for _, row := range report.ByMethod {
			if row.TypeLabel != lastLabel {
				doc.Text(row.TypeLabel)
				lastLabel = row.TypeLabel
			}
			doc.KeyValue("  "+row.Method, money(row.Amount))
		}
	}

	if len(report.TopCustomers) > 0 {
		doc.Separator('-')
		doc.SetBold(true).Text("Mejores clientes").SetBold(false)
		for i, customer := range report.TopCustomers {
			doc.KeyValue(fmt.Sprintf("%d. %s (%d)", i+1, customer.Name, customer.Count), money(customer.Total))
		}
	}

	if len(report.Transactions) > 0 {
		doc.Separator('-')
		doc.SetBold(true).Text("Detalle").SetBold(false)
		for _, line := range report.Transactions {
			doc.Text(line.Date + "  " + line.Customer)
			doc.KeyValue("  "+line.Payment, money(line.Total))
		}
	}

	doc.Separator('=')
	doc.FeedLines(3).PartialCut()
	return doc
}

func money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
