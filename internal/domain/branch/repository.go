package branch

import "context"

type Repository interface {
	List(ctx context.Context) ([]Branch, error)
	Create(ctx context.Context, b *Branch) (int64, error)
	Delete(ctx context.Context, id int64) error
}
