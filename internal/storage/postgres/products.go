package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

const productColumns = `id, name, description, image_url, original_price, sale_price, stock, low_stock_threshold, created_at, updated_at`

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.OriginalPrice,
		&p.SalePrice, &p.Stock, &p.LowStockThreshold, &p.CreatedAt, &p.UpdatedAt)
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (name, description, image_url, original_price, sale_price, stock, low_stock_threshold)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at, updated_at`
	p := *product
	err := r.storage.pool.QueryRow(ctx, query, p.Name, p.Description, p.ImageURL,
		p.OriginalPrice, p.SalePrice, p.Stock, p.LowStockThreshold).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	const query = `UPDATE products
                   SET name=$1, description=$2, image_url=$3, original_price=$4, sale_price=$5,
                       stock=$6, low_stock_threshold=$7, updated_at=NOW()
                   WHERE id=$8`
	tag, err := r.storage.pool.Exec(ctx, query, product.Name, product.Description, product.ImageURL,
		product.OriginalPrice, product.SalePrice, product.Stock, product.LowStockThreshold, product.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM products WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	var p model.Product
	if err := scanProduct(r.storage.pool.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const query = `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Search(ctx context.Context, query string, limit, offset int) ([]model.Product, int, error) {
	pattern := "%" + query + "%"

	const countQuery = `SELECT COUNT(*) FROM products WHERE name ILIKE $1 OR description ILIKE $1`
	var total int
	if err := r.storage.pool.QueryRow(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	const pageQuery = `SELECT ` + productColumns + `
                       FROM products
                       WHERE name ILIKE $1 OR description ILIKE $1
                       ORDER BY name, id
                       LIMIT $2 OFFSET $3`
	rows, err := r.storage.pool.Query(ctx, pageQuery, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *productRepository) SetStock(ctx context.Context, id int64, stock int) error {
	const query = `UPDATE products SET stock=$1, updated_at=NOW() WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, stock, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) BulkSetStock(ctx context.Context, updates []repository.StockUpdate) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `UPDATE products SET stock=$1, updated_at=NOW() WHERE id=$2`
		for _, upd := range updates {
			tag, err := tx.Exec(ctx, query, upd.Stock, upd.ProductID)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrNotFound
			}
		}
		return nil
	})
}

func (r *productRepository) AdjustStock(ctx context.Context, id int64, delta int) error {
	const query = `UPDATE products SET stock = stock + $1, updated_at=NOW() WHERE id=$2 AND stock + $1 >= 0`
	tag, err := r.storage.pool.Exec(ctx, query, delta, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return domainErrors.ErrInsufficientStock
	}
	return nil
}

func (r *productRepository) SetLowStockThreshold(ctx context.Context, id int64, threshold int) error {
	const query = `UPDATE products SET low_stock_threshold=$1, updated_at=NOW() WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, threshold, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) ListLowStock(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE stock <= low_stock_threshold ORDER BY stock, id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) CreateRestockRequest(ctx context.Context, req *model.RestockRequest) (*model.RestockRequest, error) {
	const query = `INSERT INTO restock_requests (product_id, quantity, note, status)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at`
	out := *req
	err := r.storage.pool.QueryRow(ctx, query, req.ProductID, req.Quantity, req.Note, req.Status).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
