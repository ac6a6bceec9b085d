package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/space-market/pos-server/internal/core/domain"
	"github.com/space-market/pos-server/internal/core/ports"
	"github.com/space-market/pos-server/internal/pkg/metrics"
)

type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	u := &domain.User{
		Name:     in.Name,
		Email:    in.Email,
		Balance:  valueOr(in.Balance, 0),
		Active:   valueOr(in.Active, true),
		Audit:    valueOr(in.Audit, false),
		Redirect: valueOr(in.Redirect, true),
		Avatar:   in.Avatar,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("user").Inc()
	s.log.Info().Int64("user_id", u.ID).Str("name", u.Name).Msg("user created")
	return u, nil
}

// Update applies patch to the stored user and saves it. A balance set here
// bypasses the journal; use BalanceService for tracked mutations.
func (s *UserService) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(u)

	if err := s.repo.Update(ctx, u, patch.SetsBalance()); err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}

	s.log.Info().Int64("user_id", id).Msg("user updated")
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

// Stats aggregates over all users.
func (s *UserService) Stats(ctx context.Context) (domain.UserStats, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("user stats: %w", err)
	}
	return domain.ComputeStats(users), nil
}
