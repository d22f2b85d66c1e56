package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ventaspos/ledger-api/internal/domain/entity"
	"github.com/ventaspos/ledger-api/pkg/pagination"
)

// CustomerRepository defines data access methods for customers
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// ListAll returns the whole roster, used by the loyalty merger.
	ListAll(ctx context.Context) ([]entity.Customer, error)
}
