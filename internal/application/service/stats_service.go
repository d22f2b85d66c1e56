package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/ventaspos/ledger-api/internal/cache"
	"github.com/ventaspos/ledger-api/internal/domain/entity"
	"github.com/ventaspos/ledger-api/internal/domain/payment"
	"github.com/ventaspos/ledger-api/internal/domain/repository"
)

// SaleFilter holds the active filter criteria for the sales ledger.
// Empty fields impose no constraint. Dates are zero-padded "YYYY-MM-DD"
// strings compared against each sale's local calendar date.
type SaleFilter struct {
	StartDate string `form:"start_date" json:"start_date"`
	EndDate   string `form:"end_date" json:"end_date"`
	Customer  string `form:"customer" json:"customer"`
	Method    string `form:"method" json:"method"`
}

// Key returns a stable cache-key fragment for the filter.
func (f SaleFilter) Key() string {
	return fmt.Sprintf("%s|%s|%s|%s",
		f.StartDate, f.EndDate,
		strings.ToLower(f.Customer), strings.ToLower(f.Method))
}

// CustomerRank is one entry of the top-customers ranking.
type CustomerRank struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// Stats is the aggregate contract consumed by scorecards and the report
// renderer. Field names and numeric semantics are stable; consumers perform
// no recomputation of their own.
type Stats struct {
	TotalSales      float64                       `json:"total_sales"`
	Count           int                           `json:"count"`
	AvgTicket       float64                       `json:"avg_ticket"`
	ByMethod        map[string]float64            `json:"by_method"`
	ByMethodGrouped map[string]map[string]float64 `json:"by_method_grouped"`
	TopCustomers    []CustomerRank                `json:"top_customers"`
}

// unknownCustomer labels sales that carry no customer display name.
const unknownCustomer = "Desconocido"

// localDate formats a timestamp as its local calendar date. Comparing date
// strings instead of instants avoids boundary shifts from time-zone offsets.
func localDate(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// FilterSales returns the subset of sales matching all active criteria,
// sorted newest first. The input slice is never mutated; equal timestamps
// keep their input order.
func FilterSales(sales []entity.SaleRecord, f SaleFilter) []entity.SaleRecord {
	customerNeedle := strings.ToLower(f.Customer)
	methodNeedle := strings.ToLower(f.Method)

	out := make([]entity.SaleRecord, 0, len(sales))
	for _, sale := range sales {
		date := localDate(sale.CreatedAt)
		if f.StartDate != "" && date < f.StartDate {
			continue
		}
		if f.EndDate != "" && date > f.EndDate {
			continue
		}
		if customerNeedle != "" && !strings.Contains(strings.ToLower(sale.CustomerName), customerNeedle) {
			continue
		}
		// The method filter matches against the cleaned rendering, so it
		// lines up with the method names shown in the filter UI.
		if methodNeedle != "" && !strings.Contains(strings.ToLower(payment.Clean(sale.PaymentSnapshot)), methodNeedle) {
			continue
		}
		out = append(out, sale)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// AggregateStats reduces a sales collection into a Stats object. It is a
// pure reduction: identical input yields identical output, and empty input
// yields zeroed (never nil) accumulators.
func AggregateStats(sales []entity.SaleRecord) Stats {
	stats := Stats{
		ByMethod:        make(map[string]float64),
		ByMethodGrouped: make(map[string]map[string]float64),
		TopCustomers:    []CustomerRank{},
	}

	customerTotals := make(map[string]*CustomerRank)
	customerOrder := make([]string, 0)

	for _, sale := range sales {
		stats.TotalSales += sale.TotalAmount
		stats.Count++

		for _, comp := range payment.Decode(sale.PaymentSnapshot, sale.TotalAmount) {
			stats.ByMethod[comp.Method] += comp.Amount

			label := comp.Type.Label()
			if stats.ByMethodGrouped[label] == nil {
				stats.ByMethodGrouped[label] = make(map[string]float64)
			}
			stats.ByMethodGrouped[label][comp.Method] += comp.Amount
		}

		name := sale.CustomerName
		if name == "" {
			name = unknownCustomer
		}
		rank, ok := customerTotals[name]
		if !ok {
			rank = &CustomerRank{Name: name}
			customerTotals[name] = rank
			customerOrder = append(customerOrder, name)
		}
		rank.Count++
		rank.Total += sale.TotalAmount
	}

	if stats.Count > 0 {
		stats.AvgTicket = stats.TotalSales / float64(stats.Count)
	}

	// Ranking is descending by total spend; equal totals keep the order of
	// first occurrence in the aggregation pass.
	ranks := make([]CustomerRank, 0, len(customerOrder))
	for _, name := range customerOrder {
		ranks = append(ranks, *customerTotals[name])
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Total > ranks[j].Total
	})
	if len(ranks) > 3 {
		ranks = ranks[:3]
	}
	stats.TopCustomers = ranks

	return stats
}

// MethodNames collects the distinct cleaned payment-method names across the
// ledger, sorted alphabetically. This feeds the filter-selection UI, so the
// options line up with what the method filter substring-matches against.
func MethodNames(sales []entity.SaleRecord) []string {
	seen := make(map[string]struct{})
	for _, sale := range sales {
		for _, comp := range payment.Decode(sale.PaymentSnapshot, sale.TotalAmount) {
			seen[comp.Method] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StatsService computes ledger analytics on demand. Results are cached as a
// pure performance layer: entries are keyed by the ledger generation counter
// and expire on their TTL, so observable behavior never changes.
type StatsService struct {
	saleRepo repository.SaleRepository
	cache    cache.StatsCache
	cacheTTL time.Duration
}

// NewStatsService creates a new stats service
func NewStatsService(saleRepo repository.SaleRepository, statsCache cache.StatsCache, cacheTTL time.Duration) *StatsService {
	return &StatsService{
		saleRepo: saleRepo,
		cache:    statsCache,
		cacheTTL: cacheTTL,
	}
}

// GetStats returns the aggregate Stats for the ledger subset selected by the
// filter. Cache failures degrade to recomputation, never to an error.
func (s *StatsService) GetStats(ctx context.Context, filter SaleFilter) (*Stats, error) {
	key, ok := s.cacheKey(ctx, "stats", filter.Key())
	if ok {
		if payload, hit, err := s.cache.Get(ctx, key); err == nil && hit {
			var cached Stats
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	sales, err := s.saleRepo.ListHistory(ctx)
	if err != nil {
		return nil, err
	}

	stats := AggregateStats(FilterSales(sales, filter))

	if ok {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
				log.Printf("Warning: failed to cache stats: %v", err)
			}
		}
	}

	return &stats, nil
}

// MethodNames returns the distinct cleaned payment-method display names.
func (s *StatsService) MethodNames(ctx context.Context) ([]string, error) {
	sales, err := s.saleRepo.ListHistory(ctx)
	if err != nil {
		return nil, err
	}
	return MethodNames(sales), nil
}

// cacheKey builds a generation-versioned cache key. A false return disables
// caching for this request (e.g. the generation counter is unreachable).
func (s *StatsService) cacheKey(ctx context.Context, kind, suffix string) (string, bool) {
	gen, err := s.cache.Generation(ctx)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("ledger:%s:g%d:%s", kind, gen, suffix), true
}
