package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

const paymentColumns = `id, order_id, transaction_id, amount, method, status, detail, created_at, updated_at`

func scanPayment(row pgx.Row, p *model.Payment) error {
	return row.Scan(&p.ID, &p.OrderID, &p.TransactionID, &p.Amount, &p.Method,
		&p.Status, &p.Detail, &p.CreatedAt, &p.UpdatedAt)
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	const query = `INSERT INTO payments (order_id, transaction_id, amount, method, status, detail)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, created_at, updated_at`
	out := *payment
	err := r.storage.pool.QueryRow(ctx, query, payment.OrderID, payment.TransactionID,
		payment.Amount, payment.Method, payment.Status, payment.Detail).Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *paymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*model.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id=$1`
	var p model.Payment
	if err := scanPayment(r.storage.pool.QueryRow(ctx, query, transactionID), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE order_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := scanPayment(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, paymentID int64, status model.PaymentStatus) error {
	const query = `UPDATE payments SET status=$1, updated_at=NOW() WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, paymentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// CompleteAndMarkOrderPaid applies a verified gateway verdict atomically:
// the payment completes, the order flips to paid and confirmed, and the
// tracking event lands, or none of it does.
func (r *paymentRepository) CompleteAndMarkOrderPaid(ctx context.Context, paymentID, orderID int64, event model.TrackingEvent) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE payments SET status=$1, updated_at=NOW() WHERE id=$2`,
			model.PaymentStatusCompleted, paymentID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		tag, err = tx.Exec(ctx, `UPDATE orders SET payment_status=$1, status=$2, updated_at=NOW() WHERE id=$3`,
			model.OrderPaymentPaid, model.OrderStatusConfirmed, orderID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		return insertTrackingEvent(ctx, tx, orderID, event)
	})
}

// SelectStuckProcessing claims payments left in processing longer than
// olderThan. Claimed rows get their updated_at touched inside the same
// transaction so concurrent workers skip them.
func (r *paymentRepository) SelectStuckProcessing(ctx context.Context, olderThan time.Duration, limit int) ([]model.Payment, error) {
	const selectQuery = `SELECT ` + paymentColumns + `
                         FROM payments
                         WHERE status='processing' AND updated_at < NOW() - $1::interval
                         ORDER BY updated_at
                         LIMIT $2
                         FOR UPDATE SKIP LOCKED`

	interval := olderThan.String()
	var payments []model.Payment
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, interval, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var p model.Payment
			if err := scanPayment(rows, &p); err != nil {
				return err
			}
			payments = append(payments, p)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		for _, p := range payments {
			if _, err := tx.Exec(ctx, `UPDATE payments SET updated_at=NOW() WHERE id=$1`, p.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payments, nil
}
