package media

import (
	"context"

	"github.com/nirs/shop-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Toda mutación de la galería (limpiar
// primarias, renumerar, promover) ocurre completa o no ocurre.
type TxRunner interface {
	RunImages(ctx context.Context, fn func(imageRepo repository.ImageRepository) error) error
}
