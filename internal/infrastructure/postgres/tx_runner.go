package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nirs/shop-api/internal/application/media"
	"github.com/nirs/shop-api/internal/application/stock"
	"github.com/nirs/shop-api/internal/application/usecase"
	"github.com/nirs/shop-api/internal/domain/repository"
)

var _ stock.TxRunner = (*TxRunner)(nil)
var _ media.TxRunner = (*TxRunner)(nil)
var _ usecase.ProductTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con un repositorio de stock atado a la tx
// y hace Commit o Rollback. Lo usan los ajustes de cantidad.
func (r *TxRunner) Run(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunImages inicia una transacción con un repositorio de imágenes atado a la
// tx (mutaciones de galería: primaria única y renumeración del orden).
func (r *TxRunner) RunImages(ctx context.Context, fn func(imageRepo repository.ImageRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewImageRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProduct inicia una transacción con los repos del borrado en cascada de
// un producto (producto, imágenes y verificación de stock).
func (r *TxRunner) RunProduct(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	imageRepo repository.ImageRepository,
	stockRepo repository.StockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	imageRepo := NewImageRepository(tx)
	stockRepo := NewStockRepository(tx)

	if err := fn(productRepo, imageRepo, stockRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
