package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nirs/shop-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura sobre la tabla de ventas product_orders.
// Este servicio no escribe órdenes; las carga un proceso externo.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// TopSelling devuelve los productos con más unidades vendidas.
func (r *StatsRepo) TopSelling(ctx context.Context, limit int) ([]repository.ProductSalesResult, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    p.article,
	    p.price,
	    p.rating,
	    SUM(o.quantity) AS total_sold
	FROM product_orders o
	JOIN products p ON p.id = o.product_id
	GROUP BY p.id, p.name, p.article, p.price, p.rating
	ORDER BY total_sold DESC, p.id
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top selling: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductSalesResult
	for rows.Next() {
		var row repository.ProductSalesResult
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Article, &row.Price, &row.Rating, &row.TotalSold); err != nil {
			return nil, fmt.Errorf("scan top selling: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopIncome devuelve los productos con mayores ingresos acumulados
// (precio de la orden por cantidad, sumado sobre todas las órdenes).
func (r *StatsRepo) TopIncome(ctx context.Context, limit int) ([]repository.ProductIncomeResult, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    SUM(o.price * o.quantity) AS total_income,
	    SUM(o.quantity)           AS total_sold
	FROM product_orders o
	JOIN products p ON p.id = o.product_id
	GROUP BY p.id, p.name
	ORDER BY total_income DESC, p.id
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top income: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductIncomeResult
	for rows.Next() {
		var row repository.ProductIncomeResult
		if err := rows.Scan(&row.ProductID, &row.Name, &row.TotalIncome, &row.TotalSold); err != nil {
			return nil, fmt.Errorf("scan top income: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
