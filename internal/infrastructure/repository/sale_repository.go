package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ventaspos/ledger-api/internal/domain/entity"
	domainRepo "github.com/ventaspos/ledger-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) ListHistory(ctx context.Context) ([]entity.SaleRecord, error) {
	var sales []entity.SaleRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleRecord, error) {
	var sale entity.SaleRecord
	err := r.db.WithContext(ctx).Preload("Customer").First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) ListItems(ctx context.Context, saleID uuid.UUID) ([]entity.SaleLineItem, error) {
	var items []entity.SaleLineItem
	err := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *saleRepository) UpdateCustomer(ctx context.Context, saleID uuid.UUID, customerID *uuid.UUID, customerName string) error {
	return r.db.WithContext(ctx).
		Model(&entity.SaleRecord{}).
		Where("id = ?", saleID).
		Updates(map[string]interface{}{
			"customer_id":   customerID,
			"customer_name": customerName,
		}).Error
}

func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.SaleLineItem{}, "sale_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.SaleRecord{}, "id = ?", id).Error
	})
}
