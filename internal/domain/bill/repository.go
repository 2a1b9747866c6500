package bill

import "context"

type Repository interface {
	List(ctx context.Context) ([]Bill, error)
	Get(ctx context.Context, id int64) (*Bill, error)
	Create(ctx context.Context, b *Bill) (int64, error)
	Update(ctx context.Context, b *Bill) error
	Delete(ctx context.Context, id int64) error
}
