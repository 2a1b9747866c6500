package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"utilibill/internal/domain/bill"
	"utilibill/internal/domain/refs"
)

type BillRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewBillRepository(pool *pgxpool.Pool, log *slog.Logger) *BillRepository {
	return &BillRepository{
		pool: pool,
		log:  log.With("component", "bill_repository"),
	}
}

func (r *BillRepository) List(ctx context.Context) ([]bill.Bill, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.id, b.bill_date, b.month, b.year,
		       b.prev_reading, b.curr_reading, b.min_charge, b.rate,
		       c.id, c.name
		FROM bills b
		JOIN customers c ON c.id = b.customer_id
		ORDER BY b.id`)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	var out []bill.Bill
	for rows.Next() {
		var b bill.Bill
		var billDate time.Time
		var customerID int64
		var customerName string
		if err := rows.Scan(&b.ID, &billDate, &b.Month, &b.Year,
			&b.PrevReading, &b.CurrReading, &b.MinCharge, &b.Rate,
			&customerID, &customerName); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		b.BillDate = billDate.Format("2006-01-02")
		b.Customer = refs.Expanded(customerID, customerName)
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BillRepository) Get(ctx context.Context, id int64) (*bill.Bill, error) {
	var b bill.Bill
	var billDate time.Time
	var customerID int64
	err := r.pool.QueryRow(ctx, `
		SELECT id, customer_id, bill_date, month, year,
		       prev_reading, curr_reading, min_charge, rate
		FROM bills WHERE id = $1`, id).
		Scan(&b.ID, &customerID, &billDate, &b.Month, &b.Year,
			&b.PrevReading, &b.CurrReading, &b.MinCharge, &b.Rate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bill.ErrNotFound
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	b.BillDate = billDate.Format("2006-01-02")
	b.Customer = refs.ByID(customerID)
	return &b, nil
}

func (r *BillRepository) Create(ctx context.Context, b *bill.Bill) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO bills (customer_id, bill_date, month, year,
		                   prev_reading, curr_reading, min_charge, rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		b.Customer.ID(), b.BillDate, b.Month, b.Year,
		b.PrevReading, b.CurrReading, b.MinCharge, b.Rate).Scan(&id)
	return id, err
}

func (r *BillRepository) Update(ctx context.Context, b *bill.Bill) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bills
		SET customer_id = $1, bill_date = $2, month = $3, year = $4,
		    prev_reading = $5, curr_reading = $6, min_charge = $7, rate = $8
		WHERE id = $9`,
		b.Customer.ID(), b.BillDate, b.Month, b.Year,
		b.PrevReading, b.CurrReading, b.MinCharge, b.Rate, b.ID)
	if err != nil {
		return fmt.Errorf("update bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bill.ErrNotFound
	}
	return nil
}

func (r *BillRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bill.ErrNotFound
	}
	return nil
}
