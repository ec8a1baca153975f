package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// StockUpdate addresses one product in a bulk stock operation.
type StockUpdate struct {
	ProductID int64
	Stock     int
}

// ProductRepository describes persistence operations with the catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error)
	Search(ctx context.Context, query string, limit, offset int) ([]model.Product, int, error)
	SetStock(ctx context.Context, id int64, stock int) error
	BulkSetStock(ctx context.Context, updates []StockUpdate) error
	// AdjustStock changes stock by delta, failing with ErrInsufficientStock
	// when the result would go negative.
	AdjustStock(ctx context.Context, id int64, delta int) error
	SetLowStockThreshold(ctx context.Context, id int64, threshold int) error
	ListLowStock(ctx context.Context) ([]model.Product, error)
	CreateRestockRequest(ctx context.Context, req *model.RestockRequest) (*model.RestockRequest, error)
}
