package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nirs/shop-api/internal/domain/entity"
	"github.com/nirs/shop-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

const storeColumns = `id, address, phone, rent, rating, created_at, updated_at`

// StoreRepo implementación de StoreRepository sobre PostgreSQL.
// Rent se persiste como NUMERIC (codec shopspring/decimal del pool).
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de tiendas. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una nueva tienda.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (id, address, phone, rent, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Address, store.Phone, store.Rent, store.Rating,
		store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`
	var s entity.Store
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Address, &s.Phone, &s.Rent, &s.Rating, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// Update actualiza una tienda existente.
func (r *StoreRepo) Update(store *entity.Store) error {
	query := `
		UPDATE stores SET address = $2, phone = $3, rent = $4, rating = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Address, store.Phone, store.Rent, store.Rating, store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// Delete elimina una tienda por ID.
func (r *StoreRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}

// List lista tiendas con paginación.
func (r *StoreRepo) List(limit, offset int) ([]*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
	return r.listQuery(query, limit, offset)
}

// ListByIDs devuelve las tiendas cuyos IDs están en la lista.
func (r *StoreRepo) ListByIDs(ids []string) ([]*entity.Store, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = ANY($1) ORDER BY id`
	return r.listQuery(query, ids)
}

func (r *StoreRepo) listQuery(query string, args ...any) ([]*entity.Store, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Address, &s.Phone, &s.Rent, &s.Rating, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
