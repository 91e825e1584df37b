package repository

import "github.com/nirs/shop-api/internal/domain/entity"

// ImageRepository define el puerto de persistencia para ProductImage.
// Las operaciones de invariante (una sola primaria, orden contiguo) las
// coordina el caso de uso media dentro de una transacción.
type ImageRepository interface {
	Create(image *entity.ProductImage) error
	GetByID(id string) (*entity.ProductImage, error)
	Update(image *entity.ProductImage) error
	Delete(id string) error
	// ListByProduct devuelve las imágenes ordenadas por display_order ascendente.
	ListByProduct(productID string) ([]*entity.ProductImage, error)
	// ClearPrimary quita la marca de primaria a todas las imágenes del producto.
	ClearPrimary(productID string) error
	SetPrimary(id string) error
	UpdateDisplayOrder(id string, order int) error
	// DeleteByProduct elimina todas las imágenes del producto (cascada explícita).
	DeleteByProduct(productID string) error
}
