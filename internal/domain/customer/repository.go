package customer

import "context"

type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	Get(ctx context.Context, id int64) (*Customer, error)
	Create(ctx context.Context, c *Customer) (int64, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id int64) error
}
