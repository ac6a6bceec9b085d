package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/space-market/pos-server/internal/core/domain"
	"github.com/space-market/pos-server/internal/core/ports"
	"github.com/space-market/pos-server/internal/pkg/metrics"
)

type ProductService struct {
	repo     ports.ProductRepository
	defaults domain.DefaultProduct
	log      zerolog.Logger
}

// NewProductService wires a product service. defaults is the policy applied to
// fields a create request leaves out.
func NewProductService(repo ports.ProductRepository, defaults domain.DefaultProduct, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, defaults: defaults, log: log}
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create merges the request over the default product and persists it.
func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	p := &domain.Product{
		Name:     in.Name,
		Caffeine: orDefault(in.Caffeine, s.defaults.Caffeine),
		Alcohol:  orDefault(in.Alcohol, s.defaults.Alcohol),
		Energy:   orDefault(in.Energy, s.defaults.Energy),
		Sugar:    orDefault(in.Sugar, s.defaults.Sugar),
		Price:    valueOr(in.Price, s.defaults.Price),
		Active:   valueOr(in.Active, s.defaults.Active),
		Image:    in.Image,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("product").Inc()
	s.log.Info().Int64("product_id", p.ID).Str("name", p.Name).Msg("product created")
	return p, nil
}

// Update applies patch to the stored product and saves it.
func (s *ProductService) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(p)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}

	s.log.Info().Int64("product_id", id).Msg("product updated")
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

// orDefault returns v, or a copy of def when v is nil.
func orDefault[T any](v, def *T) *T {
	if v != nil {
		return v
	}
	if def == nil {
		return nil
	}
	c := *def
	return &c
}

func valueOr[T any](v *T, def T) T {
	if v != nil {
		return *v
	}
	return def
}
