package payment

import "context"

type Repository interface {
	List(ctx context.Context) ([]Payment, error)
	Create(ctx context.Context, p *Payment) (int64, error)
	Delete(ctx context.Context, id int64) error
}
