package usecase

import (
	"context"

	"github.com/nirs/shop-api/internal/domain/repository"
)

// ProductTxRunner ejecuta el borrado de un producto y su cascada explícita
// (imágenes) dentro de una sola transacción.
type ProductTxRunner interface {
	RunProduct(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		imageRepo repository.ImageRepository,
		stockRepo repository.StockRepository,
	) error) error
}
