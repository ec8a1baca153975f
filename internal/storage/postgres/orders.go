package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

const orderColumns = `id, user_id, session_id, number, total_amount, payment_method, payment_status, status,
                      ship_name, ship_email, ship_phone, ship_line1, ship_line2, ship_city, ship_state, ship_zip,
                      created_at, updated_at`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(&o.ID, &o.UserID, &o.SessionID, &o.Number, &o.TotalAmount,
		&o.PaymentMethod, &o.PaymentStatus, &o.Status,
		&o.Address.Name, &o.Address.Email, &o.Address.Phone, &o.Address.Line1,
		&o.Address.Line2, &o.Address.City, &o.Address.State, &o.Address.Zip,
		&o.CreatedAt, &o.UpdatedAt)
}

// Create places the order: guarded stock decrements, order row, line items
// and the first tracking event are one transaction. Any failed decrement
// rolls everything back.
func (r *orderRepository) Create(ctx context.Context, in repository.NewOrder) (*model.Order, error) {
	order := &model.Order{
		UserID:          in.UserID,
		SessionID:       in.SessionID,
		Number:          in.Number,
		Items:           in.Items,
		TotalAmount:     in.TotalAmount,
		Address:         in.Address,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   model.OrderPaymentPending,
		Status:          model.OrderStatusPending,
		TrackingHistory: []model.TrackingEvent{in.FirstEvent},
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const decrement = `UPDATE products SET stock = stock - $1, updated_at=NOW() WHERE id=$2 AND stock >= $1`
		for _, item := range in.Items {
			tag, err := tx.Exec(ctx, decrement, item.Quantity, item.ProductID)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrInsufficientStock
			}
		}

		const insertOrder = `INSERT INTO orders
            (user_id, session_id, number, total_amount, payment_method, payment_status, status,
             ship_name, ship_email, ship_phone, ship_line1, ship_line2, ship_city, ship_state, ship_zip)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
            RETURNING id, created_at, updated_at`
		err := tx.QueryRow(ctx, insertOrder,
			in.UserID, in.SessionID, in.Number, in.TotalAmount, in.PaymentMethod,
			model.OrderPaymentPending, model.OrderStatusPending,
			in.Address.Name, in.Address.Email, in.Address.Phone, in.Address.Line1,
			in.Address.Line2, in.Address.City, in.Address.State, in.Address.Zip,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, name, unit_price, quantity, image_url)
                            VALUES ($1, $2, $3, $4, $5, $6)`
		for _, item := range in.Items {
			if _, err := tx.Exec(ctx, insertItem, order.ID, item.ProductID, item.Name,
				item.UnitPrice, item.Quantity, item.ImageURL); err != nil {
				return err
			}
		}

		return insertTrackingEvent(ctx, tx, order.ID, in.FirstEvent)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return r.getOne(ctx, query, id)
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE number=$1`
	return r.getOne(ctx, query, number)
}

func (r *orderRepository) getOne(ctx context.Context, query string, arg any) (*model.Order, error) {
	var o model.Order
	if err := scanOrder(r.storage.pool.QueryRow(ctx, query, arg), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadItems(ctx, &o); err != nil {
		return nil, err
	}
	if err := r.loadTracking(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		if err := r.loadItems(ctx, &result[i]); err != nil {
			return nil, err
		}
		if err := r.loadTracking(ctx, &result[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, event model.TrackingEvent) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const update = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
		tag, err := tx.Exec(ctx, update, status, orderID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return insertTrackingEvent(ctx, tx, orderID, event)
	})
}


func insertTrackingEvent(ctx context.Context, tx pgx.Tx, orderID int64, event model.TrackingEvent) error {
	const query = `INSERT INTO tracking_events (order_id, status, description, location, created_at)
                   VALUES ($1, $2, $3, $4, $5)`
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		const fallback = `INSERT INTO tracking_events (order_id, status, description, location)
                          VALUES ($1, $2, $3, $4)`
		_, err := tx.Exec(ctx, fallback, orderID, event.Status, event.Description, event.Location)
		return err
	}
	_, err := tx.Exec(ctx, query, orderID, event.Status, event.Description, event.Location, createdAt)
	return err
}

func (r *orderRepository) loadItems(ctx context.Context, o *model.Order) error {
	const query = `SELECT product_id, name, unit_price, quantity, image_url
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.UnitPrice, &item.Quantity, &item.ImageURL); err != nil {
			return err
		}
		o.Items = append(o.Items, item)
	}
	return rows.Err()
}

func (r *orderRepository) loadTracking(ctx context.Context, o *model.Order) error {
	const query = `SELECT status, description, location, created_at
                   FROM tracking_events WHERE order_id=$1 ORDER BY created_at, id`
	rows, err := r.storage.pool.Query(ctx, query, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var event model.TrackingEvent
		if err := rows.Scan(&event.Status, &event.Description, &event.Location, &event.CreatedAt); err != nil {
			return err
		}
		o.TrackingHistory = append(o.TrackingHistory, event)
	}
	return rows.Err()
}
