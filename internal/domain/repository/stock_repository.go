package repository

import "github.com/nirs/shop-api/internal/domain/entity"

// StockRepository define el puerto de persistencia para StockEntry.
// Las agregaciones devuelven 0 o lista vacía cuando no hay filas, nunca error.
type StockRepository interface {
	Create(entry *entity.StockEntry) error
	GetByID(id string) (*entity.StockEntry, error)
	// GetForUpdate obtiene la fila bloqueándola (SELECT FOR UPDATE); usar
	// dentro de una transacción para ajustes de cantidad.
	GetForUpdate(id string) (*entity.StockEntry, error)
	GetByProductStoreSize(productID, storeID, size string) (*entity.StockEntry, error)
	Update(entry *entity.StockEntry) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.StockEntry, error)
	ListByProduct(productID string) ([]*entity.StockEntry, error)
	ListByProductAndStore(productID, storeID string) ([]*entity.StockEntry, error)

	TotalQuantity(productID string) (int, error)
	TotalQuantityInStore(productID, storeID string) (int, error)
	QuantityBySize(productID, size string) (int, error)
	DistinctSizes(productID string) ([]string, error)
	AllDistinctSizes() ([]string, error)
	IsSizeAvailable(productID, storeID, size string) (bool, error)
	// StoreIDsWithStock devuelve los IDs de tiendas con cantidad > 0 del producto.
	StoreIDsWithStock(productID string) ([]string, error)
	ExistsForProduct(productID string) (bool, error)
}
