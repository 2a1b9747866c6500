package demandtype

import "context"

type Repository interface {
	List(ctx context.Context) ([]DemandType, error)
	Get(ctx context.Context, id int64) (*DemandType, error)
	Create(ctx context.Context, d *DemandType) (int64, error)
	Update(ctx context.Context, d *DemandType) error
	Delete(ctx context.Context, id int64) error
}
