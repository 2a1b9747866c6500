package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"utilibill/internal/domain/customer"
	"utilibill/internal/domain/refs"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewCustomerRepository(pool *pgxpool.Pool, log *slog.Logger) *CustomerRepository {
	return &CustomerRepository{
		pool: pool,
		log:  log.With("component", "customer_repository"),
	}
}

// List returns customers with branch and demand type expanded so list rows
// can show display names without extra round trips.
func (r *CustomerRepository) List(ctx context.Context) ([]customer.Customer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name, c.address, c.phone, c.meter_no,
		       b.id, b.name, d.id, d.name
		FROM customers c
		JOIN branches b ON b.id = c.branch_id
		JOIN demand_types d ON d.id = c.demand_type_id
		ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []customer.Customer
	for rows.Next() {
		var c customer.Customer
		var branchID, demandID int64
		var branchName, demandName string
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.MeterNo,
			&branchID, &branchName, &demandID, &demandName); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.Branch = refs.Expanded(branchID, branchName)
		c.DemandType = refs.Expanded(demandID, demandName)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	var c customer.Customer
	var branchID, demandID int64
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, address, phone, meter_no, branch_id, demand_type_id
		FROM customers WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.MeterNo, &branchID, &demandID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	c.Branch = refs.ByID(branchID)
	c.DemandType = refs.ByID(demandID)
	return &c, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO customers (name, address, phone, meter_no, branch_id, demand_type_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		c.Name, c.Address, c.Phone, c.MeterNo, c.Branch.ID(), c.DemandType.ID()).Scan(&id)
	return id, err
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE customers
		SET name = $1, address = $2, phone = $3, meter_no = $4,
		    branch_id = $5, demand_type_id = $6
		WHERE id = $7`,
		c.Name, c.Address, c.Phone, c.MeterNo, c.Branch.ID(), c.DemandType.ID(), c.ID)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return customer.ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return customer.ErrNotFound
	}
	return nil
}
