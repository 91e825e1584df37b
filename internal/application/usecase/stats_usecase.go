package usecase

import (
	"context"

	"github.com/nirs/shop-api/internal/application/dto"
	"github.com/nirs/shop-api/internal/domain/repository"
)

const (
	defaultStatsLimit = 10
	maxStatsLimit     = 100
)

// StatsUseCase lecturas agregadas de ventas sobre product_orders.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// TopSelling devuelve los productos con más unidades vendidas.
func (uc *StatsUseCase) TopSelling(ctx context.Context, limit int) ([]dto.PopularProductResponse, error) {
	rows, err := uc.repo.TopSelling(ctx, normalizeStatsLimit(limit))
	if err != nil {
		return nil, err
	}
	items := make([]dto.PopularProductResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.PopularProductResponse{
			ProductID: r.ProductID,
			Name:      r.Name,
			Article:   r.Article,
			Price:     r.Price,
			Rating:    r.Rating,
			TotalSold: r.TotalSold,
		})
	}
	return items, nil
}

// TopIncome devuelve los productos con mayores ingresos acumulados.
func (uc *StatsUseCase) TopIncome(ctx context.Context, limit int) ([]dto.TopIncomeProductResponse, error) {
	rows, err := uc.repo.TopIncome(ctx, normalizeStatsLimit(limit))
	if err != nil {
		return nil, err
	}
	items := make([]dto.TopIncomeProductResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.TopIncomeProductResponse{
			ProductID:   r.ProductID,
			Name:        r.Name,
			TotalIncome: r.TotalIncome,
			TotalSold:   r.TotalSold,
		})
	}
	return items, nil
}

func normalizeStatsLimit(limit int) int {
	if limit <= 0 {
		return defaultStatsLimit
	}
	if limit > maxStatsLimit {
		return maxStatsLimit
	}
	return limit
}
