package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"utilibill/internal/domain/payment"
	"utilibill/internal/domain/refs"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPaymentRepository(pool *pgxpool.Pool, log *slog.Logger) *PaymentRepository {
	return &PaymentRepository{
		pool: pool,
		log:  log.With("component", "payment_repository"),
	}
}

func (r *PaymentRepository) List(ctx context.Context) ([]payment.Payment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, bill_id, amount, paid_at FROM payments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var out []payment.Payment
	for rows.Next() {
		var p payment.Payment
		var billID int64
		var paidAt time.Time
		if err := rows.Scan(&p.ID, &billID, &p.Amount, &paidAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		p.Bill = refs.ByID(billID)
		p.PaidAt = paidAt.Format("2006-01-02")
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO payments (bill_id, amount, paid_at)
		VALUES ($1, $2, $3) RETURNING id`,
		p.Bill.ID(), p.Amount, p.PaidAt).Scan(&id)
	return id, err
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrNotFound
	}
	return nil
}
