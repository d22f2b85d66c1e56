package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/ventaspos/ledger-api/internal/cache"
	"github.com/ventaspos/ledger-api/internal/domain/entity"
	"github.com/ventaspos/ledger-api/internal/domain/repository"
	"github.com/ventaspos/ledger-api/pkg/apperror"
)

// SaleService exposes read access to the sales ledger plus the two
// mutations the back office needs: reassigning a sale's customer and
// removing a bad record.
type SaleService struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	cache        cache.StatsCache
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, customerRepo repository.CustomerRepository, statsCache cache.StatsCache) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		cache:        statsCache,
	}
}

// ListSales returns the ledger subset selected by the filter, newest first.
func (s *SaleService) ListSales(ctx context.Context, filter SaleFilter) ([]entity.SaleRecord, error) {
	sales, err := s.saleRepo.ListHistory(ctx)
	if err != nil {
		return nil, err
	}
	return FilterSales(sales, filter), nil
}

// GetSale returns a single sale with its customer preloaded.
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.SaleRecord, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSaleItems returns the line items of a sale.
func (s *SaleService) ListSaleItems(ctx context.Context, saleID uuid.UUID) ([]entity.SaleLineItem, error) {
	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return s.saleRepo.ListItems(ctx, saleID)
}

// AssignCustomer links a sale to a customer, or detaches it when customerID
// is nil. The denormalized customer name on the sale is kept in sync.
func (s *SaleService) AssignCustomer(ctx context.Context, saleID uuid.UUID, customerID *uuid.UUID) (*entity.SaleRecord, error) {
	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	customerName := ""
	if customerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *customerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		customerName = customer.Name
	}

	if err := s.saleRepo.UpdateCustomer(ctx, saleID, customerID, customerName); err != nil {
		return nil, err
	}
	s.invalidateStats(ctx)

	return s.saleRepo.GetByID(ctx, saleID)
}

// DeleteSale removes a sale and its line items.
func (s *SaleService) DeleteSale(ctx context.Context, saleID uuid.UUID) error {
	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}

	if err := s.saleRepo.Delete(ctx, saleID); err != nil {
		return err
	}
	s.invalidateStats(ctx)
	return nil
}

func (s *SaleService) invalidateStats(ctx context.Context) {
	if err := s.cache.BumpGeneration(ctx); err != nil {
		log.Printf("Warning: failed to invalidate stats cache: %v", err)
	}
}
