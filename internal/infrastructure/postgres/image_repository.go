package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nirs/shop-api/internal/domain/entity"
	"github.com/nirs/shop-api/internal/domain/repository"
)

var _ repository.ImageRepository = (*ImageRepo)(nil)

const imageColumns = `id, product_id, image_url, is_primary, display_order, created_at`

// ImageRepo implementación de ImageRepository sobre PostgreSQL. Los
// invariantes de la galería los coordina el caso de uso dentro de una tx.
type ImageRepo struct {
	q Querier
}

// NewImageRepository construye el adaptador de imágenes. Pasar pool o tx (Querier).
func NewImageRepository(q Querier) *ImageRepo {
	return &ImageRepo{q: q}
}

// Create persiste una nueva imagen.
func (r *ImageRepo) Create(image *entity.ProductImage) error {
	query := `
		INSERT INTO product_images (id, product_id, image_url, is_primary, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		image.ID, image.ProductID, image.ImageURL, image.IsPrimary, image.DisplayOrder, image.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert image: %w", err)
	}
	return nil
}

// GetByID obtiene una imagen por ID.
func (r *ImageRepo) GetByID(id string) (*entity.ProductImage, error) {
	query := `SELECT ` + imageColumns + ` FROM product_images WHERE id = $1`
	var img entity.ProductImage
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&img.ID, &img.ProductID, &img.ImageURL, &img.IsPrimary, &img.DisplayOrder, &img.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get image: %w", err)
	}
	return &img, nil
}

// Update actualiza una imagen existente.
func (r *ImageRepo) Update(image *entity.ProductImage) error {
	query := `
		UPDATE product_images SET image_url = $2, is_primary = $3, display_order = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		image.ID, image.ImageURL, image.IsPrimary, image.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("update image: %w", err)
	}
	return nil
}

// Delete elimina una imagen por ID.
func (r *ImageRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}

// ListByProduct devuelve las imágenes del producto ordenadas por display_order ascendente.
func (r *ImageRepo) ListByProduct(productID string) ([]*entity.ProductImage, error) {
	query := `SELECT ` + imageColumns + ` FROM product_images WHERE product_id = $1 ORDER BY display_order, created_at`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductImage
	for rows.Next() {
		var img entity.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageURL, &img.IsPrimary, &img.DisplayOrder, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		list = append(list, &img)
	}
	return list, rows.Err()
}

// ClearPrimary quita la marca de primaria a todas las imágenes del producto.
func (r *ImageRepo) ClearPrimary(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE product_images SET is_primary = false WHERE product_id = $1 AND is_primary = true`, productID)
	if err != nil {
		return fmt.Errorf("clear primary: %w", err)
	}
	return nil
}

// SetPrimary marca una imagen como primaria.
func (r *ImageRepo) SetPrimary(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE product_images SET is_primary = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("set primary: %w", err)
	}
	return nil
}

// UpdateDisplayOrder fija el display_order de una imagen.
func (r *ImageRepo) UpdateDisplayOrder(id string, order int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE product_images SET display_order = $2 WHERE id = $1`, id, order)
	if err != nil {
		return fmt.Errorf("update display order: %w", err)
	}
	return nil
}

// DeleteByProduct elimina todas las imágenes del producto (cascada explícita del borrado de producto).
func (r *ImageRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM product_images WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete product images: %w", err)
	}
	return nil
}
