package branch

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Branch, error)
	Create(ctx context.Context, b Branch) (int64, error)
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

func (s *Service) List(ctx context.Context) ([]Branch, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, b Branch) (int64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, &b)
	if err != nil {
		return 0, fmt.Errorf("create branch: %w", err)
	}
	return id, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete branch %d: %w", id, err)
	}
	return nil
}
