package customer

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Customer, error)
	Create(ctx context.Context, c Customer) (int64, error)
	Update(ctx context.Context, id int64, c Customer) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

func (s *Service) List(ctx context.Context) ([]Customer, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, c Customer) (int64, error) {
	if err := c.Validate(); err != nil {
		s.log.Debug("customer create rejected", "error", err)
		return 0, err
	}

	id, err := s.repo.Create(ctx, &c)
	if err != nil {
		return 0, fmt.Errorf("create customer: %w", err)
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, id int64, c Customer) error {
	c.ID = id
	if err := c.Validate(); err != nil {
		s.log.Debug("customer update rejected", "id", id, "error", err)
		return err
	}

	if err := s.repo.Update(ctx, &c); err != nil {
		return fmt.Errorf("update customer %d: %w", id, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	return nil
}
