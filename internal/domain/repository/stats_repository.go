package repository

import "context"

// ProductSalesResult fila de los productos más vendidos.
type ProductSalesResult struct {
	ProductID string
	Name      string
	Article   string
	Price     int64
	Rating    float64
	TotalSold int
}

// ProductIncomeResult fila de ingresos acumulados por producto.
type ProductIncomeResult struct {
	ProductID   string
	Name        string
	TotalIncome int64
	TotalSold   int
}

// StatsRepository consultas de solo lectura sobre la tabla de ventas
// product_orders. La escritura de órdenes queda fuera de este servicio.
type StatsRepository interface {
	TopSelling(ctx context.Context, limit int) ([]ProductSalesResult, error)
	TopIncome(ctx context.Context, limit int) ([]ProductIncomeResult, error)
}
