package enum

// SaleStatus represents the lifecycle status of a sale as stored in the ledger.
// Only completed sales contribute to customer loyalty metrics.
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "COMPLETED"
	SaleStatusPending   SaleStatus = "PENDING"
	SaleStatusCanceled  SaleStatus = "CANCELED"
)

// IsCompleted reports whether the sale counts as a finished transaction.
func (s SaleStatus) IsCompleted() bool {
	return s == SaleStatusCompleted
}
