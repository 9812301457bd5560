package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	errorvalues "github.com/limbo/dailydare/internal/error_values"
	"github.com/limbo/dailydare/internal/repository"
	"github.com/limbo/dailydare/pkg/entity"
)

type CatalogService struct {
	repo     repository.DaresRepositoryI
	expected func() []entity.Dare
}

func NewCatalogService(daresRepo repository.DaresRepositoryI) *CatalogService {
	if daresRepo == nil {
		log.Fatal("dares repo is nil")
	}
	return &CatalogService{
		repo:     daresRepo,
		expected: InitialDares,
	}
}

// Reconcile rewrites the catalog when it holds fewer dares than the seed set.
// Profiles are never touched. Reports whether the catalog was rewritten
func (cs *CatalogService) Reconcile(ctx context.Context) (bool, error) {
	seed := cs.expected()
	count, err := cs.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("counting catalog: %w", err)
	}
	if count >= len(seed) {
		return false, nil
	}
	slog.Info("reseeding dare catalog", slog.Int("found", count), slog.Int("expected", len(seed)))
	if err = cs.repo.ReplaceAll(ctx, seed); err != nil {
		return false, fmt.Errorf("reseeding catalog: %w", err)
	}
	return true, nil
}

func (cs *CatalogService) ListByDifficulty(ctx context.Context, difficulty string) ([]entity.Dare, error) {
	d, ok := entity.ParseDifficulty(difficulty)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errorvalues.ErrInvalidDifficulty, difficulty)
	}
	return cs.repo.ListByDifficulty(ctx, d)
}

func (cs *CatalogService) List(ctx context.Context) ([]entity.Dare, error) {
	return cs.repo.List(ctx)
}
