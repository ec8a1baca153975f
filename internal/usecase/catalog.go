package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// SearchResult is one page of catalog search output.
type SearchResult struct {
	Products []model.Product
	Total    int
	Limit    int
	Offset   int
}

// CatalogUseCase covers product CRUD and inventory operations.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// Create validates and stores a new product.
func (u *CatalogUseCase) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, &product)
}

// Update replaces a product's attributes.
func (u *CatalogUseCase) Update(ctx context.Context, product model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return u.products.Update(ctx, &product)
}

// Delete removes a product from the catalog.
func (u *CatalogUseCase) Delete(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}

// Get returns one product by id.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Search pages through the catalog by name substring.
func (u *CatalogUseCase) Search(ctx context.Context, query string, limit, offset int) (*SearchResult, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	if offset < 0 {
		offset = 0
	}
	products, total, err := u.products.Search(ctx, strings.TrimSpace(query), limit, offset)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Products: products, Total: total, Limit: limit, Offset: offset}, nil
}

// SetStock overwrites a product's stock counter.
func (u *CatalogUseCase) SetStock(ctx context.Context, id int64, stock int) error {
	if stock < 0 {
		return domainErrors.ErrInvalidAmount
	}
	return u.products.SetStock(ctx, id, stock)
}

// BulkSetStock overwrites stock for several products at once.
func (u *CatalogUseCase) BulkSetStock(ctx context.Context, updates []repository.StockUpdate) error {
	v := domainErrors.NewValidationError()
	for i, upd := range updates {
		if upd.ProductID <= 0 {
			v.Add(itemField(i, "productId"), "product id is required")
		}
		if upd.Stock < 0 {
			v.Add(itemField(i, "stock"), "stock must not be negative")
		}
	}
	if !v.Empty() {
		return v
	}
	return u.products.BulkSetStock(ctx, updates)
}

// SetStockAlert updates the low-stock threshold of a product.
func (u *CatalogUseCase) SetStockAlert(ctx context.Context, id int64, threshold int) error {
	if threshold < 0 {
		return domainErrors.ErrInvalidAmount
	}
	return u.products.SetLowStockThreshold(ctx, id, threshold)
}

// InventoryReport lists products at or under their low-stock threshold.
func (u *CatalogUseCase) InventoryReport(ctx context.Context) ([]model.Product, error) {
	return u.products.ListLowStock(ctx)
}

// CreateRestockRequest records an admin request to replenish a product.
func (u *CatalogUseCase) CreateRestockRequest(ctx context.Context, productID int64, quantity int, note string) (*model.RestockRequest, error) {
	if quantity <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return u.products.CreateRestockRequest(ctx, &model.RestockRequest{
		ProductID: productID,
		Quantity:  quantity,
		Note:      note,
		Status:    model.RestockRequestOpen,
	})
}

func validateProduct(product model.Product) error {
	v := domainErrors.NewValidationError()
	if strings.TrimSpace(product.Name) == "" {
		v.Add("name", "name is required")
	}
	if product.OriginalPrice < 0 || product.SalePrice < 0 {
		v.Add("price", "price must not be negative")
	}
	if product.Stock < 0 {
		v.Add("stock", "stock must not be negative")
	}
	if v.Empty() {
		return nil
	}
	return v
}
