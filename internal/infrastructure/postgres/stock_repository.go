package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nirs/shop-api/internal/domain"
	"github.com/nirs/shop-api/internal/domain/entity"
	"github.com/nirs/shop-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = `id, product_id, store_id, size_value, quantity, created_at, updated_at`

// StockRepo implementación de StockRepository sobre PostgreSQL.
// Las agregaciones usan COALESCE para devolver 0 sin filas, nunca error.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste una nueva fila de stock.
func (r *StockRepo) Create(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (id, product_id, store_id, size_value, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.StoreID, entry.SizeValue, entry.Quantity,
		entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// GetByID obtiene una fila de stock por ID.
func (r *StockRepo) GetByID(id string) (*entity.StockEntry, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_entries WHERE id = $1`
	return r.getOne(query, id)
}

// GetForUpdate obtiene la fila bloqueándola (SELECT FOR UPDATE). Usar dentro
// de una transacción; los ajustes concurrentes sobre la misma fila se serializan.
func (r *StockRepo) GetForUpdate(id string) (*entity.StockEntry, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_entries WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

// GetByProductStoreSize obtiene la fila de un producto, tienda y talla.
func (r *StockRepo) GetByProductStoreSize(productID, storeID, size string) (*entity.StockEntry, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_entries WHERE product_id = $1 AND store_id = $2 AND size_value = $3`
	return r.getOne(query, productID, storeID, size)
}

// Update actualiza una fila de stock existente.
func (r *StockRepo) Update(entry *entity.StockEntry) error {
	query := `
		UPDATE stock_entries SET product_id = $2, store_id = $3, size_value = $4, quantity = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.StoreID, entry.SizeValue, entry.Quantity, entry.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update stock entry: %w", err)
	}
	return nil
}

// Delete elimina una fila de stock por ID.
func (r *StockRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock entry: %w", err)
	}
	return nil
}

// List lista filas de stock con paginación.
func (r *StockRepo) List(limit, offset int) ([]*entity.StockEntry, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_entries ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByProduct lista las filas de stock de un producto.
func (r *StockRepo) ListByProduct(productID string) ([]*entity.StockEntry, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_entries WHERE product_id = $1 ORDER BY store_id, size_value`
	return r.list(query, productID)
}

// ListByProductAndStore lista las filas de stock de un producto en una tienda.
func (r *StockRepo) ListByProductAndStore(productID, storeID string) ([]*entity.StockEntry, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_entries WHERE product_id = $1 AND store_id = $2 ORDER BY size_value`
	return r.list(query, productID, storeID)
}

// TotalQuantity suma las cantidades del producto en todas las tiendas.
func (r *StockRepo) TotalQuantity(productID string) (int, error) {
	return r.sum(`SELECT COALESCE(SUM(quantity), 0) FROM stock_entries WHERE product_id = $1`, productID)
}

// TotalQuantityInStore suma las cantidades del producto en una tienda.
func (r *StockRepo) TotalQuantityInStore(productID, storeID string) (int, error) {
	return r.sum(`SELECT COALESCE(SUM(quantity), 0) FROM stock_entries WHERE product_id = $1 AND store_id = $2`, productID, storeID)
}

// QuantityBySize suma las cantidades del producto para una talla en todas las tiendas.
func (r *StockRepo) QuantityBySize(productID, size string) (int, error) {
	return r.sum(`SELECT COALESCE(SUM(quantity), 0) FROM stock_entries WHERE product_id = $1 AND size_value = $2`, productID, size)
}

// DistinctSizes devuelve las tallas distintas del producto en orden
// lexicográfico. Una fila con cantidad 0 también lista su talla: la
// disponibilidad real se consulta con IsSizeAvailable.
func (r *StockRepo) DistinctSizes(productID string) ([]string, error) {
	query := `SELECT DISTINCT size_value FROM stock_entries WHERE product_id = $1 ORDER BY size_value`
	return r.listStrings(query, productID)
}

// AllDistinctSizes devuelve todas las tallas conocidas por el sistema, en orden lexicográfico.
func (r *StockRepo) AllDistinctSizes() ([]string, error) {
	return r.listStrings(`SELECT DISTINCT size_value FROM stock_entries ORDER BY size_value`)
}

// IsSizeAvailable indica si la talla del producto tiene cantidad > 0 en la tienda.
func (r *StockRepo) IsSizeAvailable(productID, storeID, size string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM stock_entries
		WHERE product_id = $1 AND store_id = $2 AND size_value = $3 AND quantity > 0)`
	var available bool
	err := r.q.QueryRow(context.Background(), query, productID, storeID, size).Scan(&available)
	if err != nil {
		return false, fmt.Errorf("check size availability: %w", err)
	}
	return available, nil
}

// StoreIDsWithStock devuelve los IDs de tiendas con cantidad > 0 del producto.
func (r *StockRepo) StoreIDsWithStock(productID string) ([]string, error) {
	query := `SELECT DISTINCT store_id FROM stock_entries WHERE product_id = $1 AND quantity > 0 ORDER BY store_id`
	return r.listStrings(query, productID)
}

// ExistsForProduct indica si el producto tiene alguna fila de stock.
func (r *StockRepo) ExistsForProduct(productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM stock_entries WHERE product_id = $1)`, productID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check stock exists: %w", err)
	}
	return exists, nil
}

func (r *StockRepo) getOne(query string, args ...any) (*entity.StockEntry, error) {
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&e.ID, &e.ProductID, &e.StoreID, &e.SizeValue, &e.Quantity, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock entry: %w", err)
	}
	return &e, nil
}

func (r *StockRepo) list(query string, args ...any) ([]*entity.StockEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.StoreID, &e.SizeValue, &e.Quantity, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *StockRepo) sum(query string, args ...any) (int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum stock quantity: %w", err)
	}
	return total, nil
}

func (r *StockRepo) listStrings(query string, args ...any) ([]string, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list values: %w", err)
	}
	defer rows.Close()
	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan value: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
