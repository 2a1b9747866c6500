package payment

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Payment, error)
	Create(ctx context.Context, p Payment) (int64, error)
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

func (s *Service) List(ctx context.Context) ([]Payment, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, p Payment) (int64, error) {
	if err := p.Validate(); err != nil {
		s.log.Debug("payment create rejected", "error", err)
		return 0, err
	}

	id, err := s.repo.Create(ctx, &p)
	if err != nil {
		return 0, fmt.Errorf("record payment: %w", err)
	}
	return id, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete payment %d: %w", id, err)
	}
	return nil
}
