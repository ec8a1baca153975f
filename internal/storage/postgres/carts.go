package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

func (r *cartRepository) GetByUser(ctx context.Context, userID int64) (*model.Cart, error) {
	const query = `SELECT id, updated_at FROM carts WHERE user_id=$1`
	cart := &model.Cart{UserID: &userID}
	var cartID int64
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&cartID, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if cart.Items, err = r.loadItems(ctx, cartID); err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *cartRepository) GetBySession(ctx context.Context, sessionID string) (*model.Cart, error) {
	const query = `SELECT id, updated_at FROM carts WHERE session_id=$1`
	cart := &model.Cart{SessionID: sessionID}
	var cartID int64
	err := r.storage.pool.QueryRow(ctx, query, sessionID).Scan(&cartID, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if cart.Items, err = r.loadItems(ctx, cartID); err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *cartRepository) SaveForUser(ctx context.Context, userID int64, items []model.CartItem) error {
	const upsert = `INSERT INTO carts (user_id) VALUES ($1)
                    ON CONFLICT (user_id) DO UPDATE SET updated_at=NOW()
                    RETURNING id`
	return r.save(ctx, upsert, userID, items)
}

func (r *cartRepository) SaveForSession(ctx context.Context, sessionID string, items []model.CartItem) error {
	const upsert = `INSERT INTO carts (session_id) VALUES ($1)
                    ON CONFLICT (session_id) DO UPDATE SET updated_at=NOW()
                    RETURNING id`
	return r.save(ctx, upsert, sessionID, items)
}

func (r *cartRepository) save(ctx context.Context, upsert string, key any, items []model.CartItem) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var cartID int64
		if err := tx.QueryRow(ctx, upsert, key).Scan(&cartID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id=$1`, cartID); err != nil {
			return err
		}
		const insert = `INSERT INTO cart_items (cart_id, product_id, name, unit_price, quantity, image_url)
                        VALUES ($1, $2, $3, $4, $5, $6)`
		for _, item := range items {
			if _, err := tx.Exec(ctx, insert, cartID, item.ProductID, item.Name,
				item.UnitPrice, item.Quantity, item.ImageURL); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *cartRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	const query = `DELETE FROM carts WHERE session_id=$1`
	_, err := r.storage.pool.Exec(ctx, query, sessionID)
	return err
}

func (r *cartRepository) loadItems(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	const query = `SELECT product_id, name, unit_price, quantity, image_url
                   FROM cart_items WHERE cart_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.UnitPrice, &item.Quantity, &item.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
