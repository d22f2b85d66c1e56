package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/ventaspos/ledger-api/internal/domain/enum"
	"gorm.io/gorm"
)

// SaleRecord is an immutable transaction header in the sales ledger.
// Records are created by the checkout/cash-close process; this service only
// reads them (plus the two collaborator mutations: customer reassignment and
// deletion).
type SaleRecord struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID      *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CustomerName    string          `gorm:"size:255" json:"customer_name"`
	Subtotal        float64         `gorm:"default:0" json:"subtotal"`
	Discount        float64         `gorm:"default:0" json:"discount"`
	TotalAmount     float64         `gorm:"default:0" json:"total_amount"`
	Status          enum.SaleStatus `gorm:"size:20;default:'COMPLETED';index" json:"status"`
	PaymentSnapshot string          `gorm:"type:text" json:"payment_snapshot"`
	CreatedAt       time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []SaleLineItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before inserting a new sale record
func (s *SaleRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleRecord model
func (SaleRecord) TableName() string {
	return "sales"
}

// SaleLineItem is a line item owned by a SaleRecord. Line items are fetched
// lazily per sale and are not part of bulk aggregation.
type SaleLineItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;index" json:"product_id"`
	ProductName string         `gorm:"size:255" json:"product_name"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitPrice   float64        `gorm:"not null" json:"unit_price"`
	Subtotal    float64        `gorm:"not null" json:"subtotal"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before inserting a new line item
func (i *SaleLineItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleLineItem model
func (SaleLineItem) TableName() string {
	return "sale_items"
}
