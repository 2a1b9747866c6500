package demandtype

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]DemandType, error)
	Create(ctx context.Context, d DemandType) (int64, error)
	Update(ctx context.Context, id int64, d DemandType) error
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

func (s *Service) List(ctx context.Context) ([]DemandType, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, d DemandType) (int64, error) {
	if err := d.Validate(); err != nil {
		s.log.Debug("demand type create rejected", "error", err)
		return 0, err
	}

	id, err := s.repo.Create(ctx, &d)
	if err != nil {
		return 0, fmt.Errorf("create demand type: %w", err)
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, id int64, d DemandType) error {
	d.ID = id
	if err := d.Validate(); err != nil {
		s.log.Debug("demand type update rejected", "id", id, "error", err)
		return err
	}

	if err := s.repo.Update(ctx, &d); err != nil {
		return fmt.Errorf("update demand type %d: %w", id, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete demand type %d: %w", id, err)
	}
	return nil
}
