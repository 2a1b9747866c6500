package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"utilibill/internal/domain/branch"
)

type BranchRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewBranchRepository(pool *pgxpool.Pool, log *slog.Logger) *BranchRepository {
	return &BranchRepository{
		pool: pool,
		log:  log.With("component", "branch_repository"),
	}
}

func (r *BranchRepository) List(ctx context.Context) ([]branch.Branch, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, address, phone FROM branches ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var out []branch.Branch
	for rows.Next() {
		var b branch.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.Phone); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BranchRepository) Create(ctx context.Context, b *branch.Branch) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO branches (name, address, phone) VALUES ($1, $2, $3) RETURNING id`,
		b.Name, b.Address, b.Phone).Scan(&id)
	return id, err
}

func (r *BranchRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return branch.ErrNotFound
	}
	return nil
}
