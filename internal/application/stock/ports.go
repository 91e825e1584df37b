package stock

import (
	"context"

	"github.com/nirs/shop-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con un
// StockRepository atado a esa tx. AdjustQuantity lo usa junto con
// SELECT FOR UPDATE para que deltas concurrentes no se pierdan.
type TxRunner interface {
	Run(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error
}

// StockAdjustedEvent evento publicado tras un ajuste de cantidad exitoso.
type StockAdjustedEvent struct {
	EntryID   string `json:"entry_id"`
	ProductID string `json:"product_id"`
	StoreID   string `json:"store_id"`
	SizeValue string `json:"size_value"`
	Delta     int    `json:"delta"`
	Quantity  int    `json:"quantity"`
}

// EventPublisher publica eventos de stock hacia el broker. Puede ser nil
// (publicación deshabilitada); el caso de uso lo tolera.
type EventPublisher interface {
	PublishStockAdjusted(ctx context.Context, event StockAdjustedEvent) error
}
