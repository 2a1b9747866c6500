package employee

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, e Employee) (int64, error)
	Update(ctx context.Context, id int64, e Employee) error
	Delete(ctx context.Context, id int64) error
	ListTypes(ctx context.Context) ([]EmployeeType, error)
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

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListTypes(ctx context.Context) ([]EmployeeType, error) {
	return s.repo.ListTypes(ctx)
}

func (s *Service) Create(ctx context.Context, e Employee) (int64, error) {
	if err := e.Validate(); err != nil {
		s.log.Debug("employee create rejected", "error", err)
		return 0, err
	}

	id, err := s.repo.Create(ctx, &e)
	if err != nil {
		return 0, fmt.Errorf("create employee: %w", err)
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, id int64, e Employee) error {
	e.ID = id
	if err := e.Validate(); err != nil {
		s.log.Debug("employee update rejected", "id", id, "error", err)
		return err
	}

	if err := s.repo.Update(ctx, &e); err != nil {
		return fmt.Errorf("update employee %d: %w", id, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	return nil
}
