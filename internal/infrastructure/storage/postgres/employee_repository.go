package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"utilibill/internal/domain/employee"
	"utilibill/internal/domain/refs"
)

type EmployeeRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewEmployeeRepository(pool *pgxpool.Pool, log *slog.Logger) *EmployeeRepository {
	return &EmployeeRepository{
		pool: pool,
		log:  log.With("component", "employee_repository"),
	}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT e.id, e.name, e.email, e.phone,
		       b.id, b.name, t.id, t.name
		FROM employees e
		JOIN branches b ON b.id = e.branch_id
		JOIN employee_types t ON t.id = e.employee_type_id
		ORDER BY e.id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var out []employee.Employee
	for rows.Next() {
		var e employee.Employee
		var branchID, typeID int64
		var branchName, typeName string
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone,
			&branchID, &branchName, &typeID, &typeName); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		e.Branch = refs.Expanded(branchID, branchName)
		e.Type = refs.Expanded(typeID, typeName)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EmployeeRepository) Get(ctx context.Context, id int64) (*employee.Employee, error) {
	var e employee.Employee
	var branchID, typeID int64
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, phone, branch_id, employee_type_id
		FROM employees WHERE id = $1`, id).
		Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &branchID, &typeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrNotFound
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	e.Branch = refs.ByID(branchID)
	e.Type = refs.ByID(typeID)
	return &e, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO employees (name, email, phone, branch_id, employee_type_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		e.Name, e.Email, e.Phone, e.Branch.ID(), e.Type.ID()).Scan(&id)
	return id, err
}

func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE employees
		SET name = $1, email = $2, phone = $3, branch_id = $4, employee_type_id = $5
		WHERE id = $6`,
		e.Name, e.Email, e.Phone, e.Branch.ID(), e.Type.ID(), e.ID)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) ListTypes(ctx context.Context) ([]employee.EmployeeType, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM employee_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list employee types: %w", err)
	}
	defer rows.Close()

	var out []employee.EmployeeType
	for rows.Next() {
		var t employee.EmployeeType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan employee type: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
