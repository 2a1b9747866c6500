package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"utilibill/internal/domain/demandtype"
)

type DemandTypeRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewDemandTypeRepository(pool *pgxpool.Pool, log *slog.Logger) *DemandTypeRepository {
	return &DemandTypeRepository{
		pool: pool,
		log:  log.With("component", "demandtype_repository"),
	}
}

func (r *DemandTypeRepository) List(ctx context.Context) ([]demandtype.DemandType, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, min_charge, rate FROM demand_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list demand types: %w", err)
	}
	defer rows.Close()

	var out []demandtype.DemandType
	for rows.Next() {
		var d demandtype.DemandType
		if err := rows.Scan(&d.ID, &d.Name, &d.MinCharge, &d.Rate); err != nil {
			return nil, fmt.Errorf("scan demand type: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DemandTypeRepository) Get(ctx context.Context, id int64) (*demandtype.DemandType, error) {
	var d demandtype.DemandType
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, min_charge, rate FROM demand_types WHERE id = $1`, id).
		Scan(&d.ID, &d.Name, &d.MinCharge, &d.Rate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, demandtype.ErrNotFound
		}
		return nil, fmt.Errorf("get demand type: %w", err)
	}
	return &d, nil
}

func (r *DemandTypeRepository) Create(ctx context.Context, d *demandtype.DemandType) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO demand_types (name, min_charge, rate) VALUES ($1, $2, $3) RETURNING id`,
		d.Name, d.MinCharge, d.Rate).Scan(&id)
	return id, err
}

func (r *DemandTypeRepository) Update(ctx context.Context, d *demandtype.DemandType) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE demand_types SET name = $1, min_charge = $2, rate = $3 WHERE id = $4`,
		d.Name, d.MinCharge, d.Rate, d.ID)
	if err != nil {
		return fmt.Errorf("update demand type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return demandtype.ErrNotFound
	}
	return nil
}

func (r *DemandTypeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM demand_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete demand type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return demandtype.ErrNotFound
	}
	return nil
}
