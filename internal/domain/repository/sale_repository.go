package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ventaspos/ledger-api/internal/domain/entity"
)

// SaleRepository defines the ledger-store operations for sale records.
// The analytics engine only ever reads; the two mutations exist for the
// surrounding UI (customer reassignment, deletion).
type SaleRepository interface {
	// ListHistory returns the full sales ledger, newest first.
	ListHistory(ctx context.Context) ([]entity.SaleRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleRecord, error)
	// ListItems returns a sale's line items. Items are fetched lazily per
	// sale and are never part of bulk aggregation.
	ListItems(ctx context.Context, saleID uuid.UUID) ([]entity.SaleLineItem, error)
	UpdateCustomer(ctx context.Context, saleID uuid.UUID, customerID *uuid.UUID, customerName string) error
	// Delete removes a sale together with its line items. Reverting the
	// associated stock is the checkout collaborator's responsibility.
	Delete(ctx context.Context, id uuid.UUID) error
}
