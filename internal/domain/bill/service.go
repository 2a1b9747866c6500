package bill

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Bill, error)
	Create(ctx context.Context, b Bill) (int64, error)
	Update(ctx context.Context, id int64, b Bill) error
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

func (s *Service) List(ctx context.Context) ([]Bill, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, b Bill) (int64, error) {
	b.Normalize()
	if err := b.Validate(); err != nil {
		s.log.Debug("bill create rejected", "error", err)
		return 0, err
	}

	id, err := s.repo.Create(ctx, &b)
	if err != nil {
		return 0, fmt.Errorf("create bill: %w", err)
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, id int64, b Bill) error {
	b.ID = id
	b.Normalize()
	if err := b.Validate(); err != nil {
		s.log.Debug("bill update rejected", "id", id, "error", err)
		return err
	}

	if err := s.repo.Update(ctx, &b); err != nil {
		return fmt.Errorf("update bill %d: %w", id, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete bill %d: %w", id, err)
	}
	return nil
}
