package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/ventaspos/ledger-api/internal/domain/entity"
	"github.com/ventaspos/ledger-api/internal/domain/repository"
)

// CustomerMetric is a customer enriched with lifetime purchase metrics.
// Customers with no qualifying sales still appear, with zeroed metrics and
// an empty LastVisit.
type CustomerMetric struct {
	entity.Customer
	TotalSpent    float64 `json:"total_spent"`
	VisitCount    int     `json:"visit_count"`
	LastVisit     string  `json:"last_visit"`
	AverageTicket float64 `json:"average_ticket"`
}

// defaultTopSpenders bounds the ranking when no explicit limit is given.
const defaultTopSpenders = 5

// BuildCustomerMetrics merges the customer roster with the full sales
// history. Only COMPLETED sales linked to a customer count toward metrics;
// pending and canceled sales, and walk-in sales with no customer reference,
// are ignored. The result is sorted by total spend descending, with the
// customer ID breaking ties deterministically.
func BuildCustomerMetrics(customers []entity.Customer, sales []entity.SaleRecord) []CustomerMetric {
	type acc struct {
		total float64
		count int
		last  string
	}
	totals := make(map[uuid.UUID]*acc)

	for _, sale := range sales {
		if !sale.Status.IsCompleted() || sale.CustomerID == nil {
			continue
		}
		a, ok := totals[*sale.CustomerID]
		if !ok {
			a = &acc{}
			totals[*sale.CustomerID] = a
		}
		a.total += sale.TotalAmount
		a.count++
		if date := localDate(sale.CreatedAt); date > a.last {
			a.last = date
		}
	}

	metrics := make([]CustomerMetric, 0, len(customers))
	for _, customer := range customers {
		metric := CustomerMetric{Customer: customer}
		if a, ok := totals[customer.ID]; ok {
			metric.TotalSpent = a.total
			metric.VisitCount = a.count
			metric.LastVisit = a.last
			if a.count > 0 {
				metric.AverageTicket = a.total / float64(a.count)
			}
		}
		metrics = append(metrics, metric)
	}

	sort.Slice(metrics, func(i, j int) bool {
		if metrics[i].TotalSpent != metrics[j].TotalSpent {
			return metrics[i].TotalSpent > metrics[j].TotalSpent
		}
		return metrics[i].ID.String() < metrics[j].ID.String()
	})
	return metrics
}

// TopSpenders returns up to limit customers with a positive lifetime total.
// Zero-spend customers never rank, even when the list runs short.
func TopSpenders(metrics []CustomerMetric, limit int) []CustomerMetric {
	if limit <= 0 {
		limit = defaultTopSpenders
	}

	top := make([]CustomerMetric, 0, limit)
	for _, metric := range metrics {
		if metric.TotalSpent <= 0 {
			continue
		}
		top = append(top, metric)
		if len(top) == limit {
			break
		}
	}
	return top
}

// LoyaltyService exposes customer lifetime metrics over the full history.
type LoyaltyService struct {
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
}

// NewLoyaltyService creates a new loyalty service
func NewLoyaltyService(customerRepo repository.CustomerRepository, saleRepo repository.SaleRepository) *LoyaltyService {
	return &LoyaltyService{
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
	}
}

// CustomerMetrics returns the full roster enriched with lifetime metrics.
func (s *LoyaltyService) CustomerMetrics(ctx context.Context) ([]CustomerMetric, error) {
	customers, err := s.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.ListHistory(ctx)
	if err != nil {
		return nil, err
	}
	return BuildCustomerMetrics(customers, sales), nil
}

// TopSpenders returns the highest-spending customers, at most limit entries.
func (s *LoyaltyService) TopSpenders(ctx context.Context, limit int) ([]CustomerMetric, error) {
	metrics, err := s.CustomerMetrics(ctx)
	if err != nil {
		return nil, err
	}
	return TopSpenders(metrics, limit), nil
}
