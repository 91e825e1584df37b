package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nirs/shop-api/internal/application/dto"
	"github.com/nirs/shop-api/internal/domain"
	"github.com/nirs/shop-api/internal/domain/entity"
	"github.com/nirs/shop-api/internal/domain/repository"
	"github.com/nirs/shop-api/pkg/logger"
)

// StockUseCase agrega y muta las filas de stock (producto × tienda × talla).
// Las agregaciones responden 0 o lista vacía ante ausencia de filas; los
// ajustes de cantidad corren en transacción con bloqueo de fila.
type StockUseCase struct {
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	txRunner    TxRunner
	publisher   EventPublisher
	log         *logger.Logger
}

// NewStockUseCase construye el caso de uso. publisher puede ser nil.
func NewStockUseCase(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	txRunner TxRunner,
	publisher EventPublisher,
	log *logger.Logger,
) *StockUseCase {
	return &StockUseCase{
		stockRepo:   stockRepo,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		txRunner:    txRunner,
		publisher:   publisher,
		log:         log,
	}
}

// Create crea una fila de stock. La unicidad de (producto, tienda, talla) se
// valida aquí: el esquema no la impone.
func (uc *StockUseCase) Create(in dto.CreateStockEntryRequest) (*dto.StockEntryResponse, error) {
	if err := uc.requireProduct(in.ProductID); err != nil {
		return nil, err
	}
	if err := uc.requireStore(in.StoreID); err != nil {
		return nil, err
	}
	existing, err := uc.stockRepo.GetByProductStoreSize(in.ProductID, in.StoreID, in.SizeValue)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	entry := &entity.StockEntry{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		StoreID:   in.StoreID,
		SizeValue: in.SizeValue,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.stockRepo.Create(entry); err != nil {
		return nil, err
	}
	return toStockEntryResponse(entry), nil
}

// GetByID obtiene una fila de stock por ID.
func (uc *StockUseCase) GetByID(id string) (*dto.StockEntryResponse, error) {
	entry, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return toStockEntryResponse(entry), nil
}

// Update actualiza una fila de stock; permite reasignar producto o tienda
// validando existencia y re-verificando la unicidad suave.
func (uc *StockUseCase) Update(id string, in dto.UpdateStockEntryRequest) (*dto.StockEntryResponse, error) {
	entry, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	keyChanged := false
	if in.ProductID != nil && *in.ProductID != entry.ProductID {
		if err := uc.requireProduct(*in.ProductID); err != nil {
			return nil, err
		}
		entry.ProductID = *in.ProductID
		keyChanged = true
	}
	if in.StoreID != nil && *in.StoreID != entry.StoreID {
		if err := uc.requireStore(*in.StoreID); err != nil {
			return nil, err
		}
		entry.StoreID = *in.StoreID
		keyChanged = true
	}
	if in.SizeValue != nil && *in.SizeValue != entry.SizeValue {
		entry.SizeValue = *in.SizeValue
		keyChanged = true
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		entry.Quantity = *in.Quantity
	}
	if keyChanged {
		existing, err := uc.stockRepo.GetByProductStoreSize(entry.ProductID, entry.StoreID, entry.SizeValue)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != entry.ID {
			return nil, domain.ErrDuplicate
		}
	}
	entry.UpdatedAt = time.Now()
	if err := uc.stockRepo.Update(entry); err != nil {
		return nil, err
	}
	return toStockEntryResponse(entry), nil
}

// Delete elimina una fila de stock.
func (uc *StockUseCase) Delete(id string) error {
	entry, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return uc.stockRepo.Delete(id)
}

// List lista filas de stock con paginación.
func (uc *StockUseCase) List(limit, offset int) ([]dto.StockEntryResponse, error) {
	entries, err := uc.stockRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toStockEntryResponses(entries), nil
}

// ListByProduct lista las filas de stock de un producto.
func (uc *StockUseCase) ListByProduct(productID string) ([]dto.StockEntryResponse, error) {
	if err := uc.requireProduct(productID); err != nil {
		return nil, err
	}
	entries, err := uc.stockRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toStockEntryResponses(entries), nil
}

// ListByProductAndStore lista las filas de stock de un producto en una tienda.
func (uc *StockUseCase) ListByProductAndStore(productID, storeID string) ([]dto.StockEntryResponse, error) {
	if err := uc.requireProduct(productID); err != nil {
		return nil, err
	}
	entries, err := uc.stockRepo.ListByProductAndStore(productID, storeID)
	if err != nil {
		return nil, err
	}
	return toStockEntryResponses(entries), nil
}

// TotalQuantity suma las cantidades del producto en todas las tiendas y
// tallas; 0 (no error) cuando no hay filas.
func (uc *StockUseCase) TotalQuantity(productID string) (int, error) {
	if err := uc.requireProduct(productID); err != nil {
		return 0, err
	}
	return uc.stockRepo.TotalQuantity(productID)
}

// TotalQuantityInStore suma restringida a una tienda; 0 cuando no hay filas.
func (uc *StockUseCase) TotalQuantityInStore(productID, storeID string) (int, error) {
	if err := uc.requireProduct(productID); err != nil {
		return 0, err
	}
	return uc.stockRepo.TotalQuantityInStore(productID, storeID)
}

// QuantityBySize suma entre tiendas para una talla; 0 cuando no hay filas.
func (uc *StockUseCase) QuantityBySize(productID, size string) (int, error) {
	if err := uc.requireProduct(productID); err != nil {
		return 0, err
	}
	return uc.stockRepo.QuantityBySize(productID, size)
}

// AvailableSizes devuelve las tallas distintas del producto, ordenadas
// lexicográficamente (las tallas son etiquetas opacas, no números).
// Incluye tallas cuyas filas están en cantidad 0; la disponibilidad real
// se consulta con IsAvailable. Lista vacía, no error, cuando no hay filas.
func (uc *StockUseCase) AvailableSizes(productID string) ([]string, error) {
	if err := uc.requireProduct(productID); err != nil {
		return nil, err
	}
	sizes, err := uc.stockRepo.DistinctSizes(productID)
	if err != nil {
		return nil, err
	}
	if sizes == nil {
		sizes = []string{}
	}
	return sizes, nil
}

// AllSizes devuelve todas las tallas distintas del catálogo completo.
func (uc *StockUseCase) AllSizes() ([]string, error) {
	sizes, err := uc.stockRepo.AllDistinctSizes()
	if err != nil {
		return nil, err
	}
	if sizes == nil {
		sizes = []string{}
	}
	return sizes, nil
}

// IsAvailable indica si existe una fila (producto, tienda, talla) con
// cantidad > 0.
func (uc *StockUseCase) IsAvailable(productID, storeID, size string) (bool, error) {
	if err := uc.requireProduct(productID); err != nil {
		return false, err
	}
	return uc.stockRepo.IsSizeAvailable(productID, storeID, size)
}

// IsProductInStock indica si el producto tiene cantidad > 0 en la tienda.
func (uc *StockUseCase) IsProductInStock(productID, storeID string) (bool, error) {
	qty, err := uc.TotalQuantityInStore(productID, storeID)
	if err != nil {
		return false, err
	}
	return qty > 0, nil
}

// StoresWithProduct devuelve las tiendas que tienen el producto con
// cantidad > 0.
func (uc *StockUseCase) StoresWithProduct(productID string) ([]dto.StoreResponse, error) {
	if err := uc.requireProduct(productID); err != nil {
		return nil, err
	}
	ids, err := uc.stockRepo.StoreIDsWithStock(productID)
	if err != nil {
		return nil, err
	}
	stores, err := uc.storeRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, dto.StoreResponse{
			ID:        s.ID,
			Address:   s.Address,
			Phone:     s.Phone,
			Rent:      s.Rent,
			Rating:    s.Rating,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}
	return out, nil
}

// AdjustQuantity aplica un delta a la cantidad de la fila dentro de una
// transacción con bloqueo de fila (SELECT FOR UPDATE), de modo que deltas
// concurrentes se serializan y no se pierden. Falla con ErrInvalidInput si
// la cantidad resultante sería negativa.
func (uc *StockUseCase) AdjustQuantity(ctx context.Context, id string, delta int) (*dto.StockEntryResponse, error) {
	var updated *entity.StockEntry
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
		entry, err := stockRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		newQty := entry.Quantity + delta
		if newQty < 0 {
			return domain.ErrInvalidInput
		}
		entry.Quantity = newQty
		entry.UpdatedAt = time.Now()
		if err := stockRepo.Update(entry); err != nil {
			return err
		}
		updated = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.publishAdjusted(ctx, updated, delta)
	return toStockEntryResponse(updated), nil
}

// SetQuantity fija la cantidad absoluta de la fila (≥ 0), también bajo
// bloqueo de fila.
func (uc *StockUseCase) SetQuantity(ctx context.Context, id string, quantity int) (*dto.StockEntryResponse, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.StockEntry
	var delta int
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
		entry, err := stockRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		delta = quantity - entry.Quantity
		entry.Quantity = quantity
		entry.UpdatedAt = time.Now()
		if err := stockRepo.Update(entry); err != nil {
			return err
		}
		updated = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.publishAdjusted(ctx, updated, delta)
	return toStockEntryResponse(updated), nil
}

// publishAdjusted publica el evento tras el commit; un fallo del broker no
// revierte el ajuste, solo se registra.
func (uc *StockUseCase) publishAdjusted(ctx context.Context, entry *entity.StockEntry, delta int) {
	if uc.publisher == nil {
		return
	}
	event := StockAdjustedEvent{
		EntryID:   entry.ID,
		ProductID: entry.ProductID,
		StoreID:   entry.StoreID,
		SizeValue: entry.SizeValue,
		Delta:     delta,
		Quantity:  entry.Quantity,
	}
	if err := uc.publisher.PublishStockAdjusted(ctx, event); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("entry_id", entry.ID).Msg("publicar evento stock.adjusted")
	}
}

func (uc *StockUseCase) requireProduct(productID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *StockUseCase) requireStore(storeID string) error {
	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toStockEntryResponse(e *entity.StockEntry) *dto.StockEntryResponse {
	return &dto.StockEntryResponse{
		ID:        e.ID,
		ProductID: e.ProductID,
		StoreID:   e.StoreID,
		SizeValue: e.SizeValue,
		Quantity:  e.Quantity,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toStockEntryResponses(entries []*entity.StockEntry) []dto.StockEntryResponse {
	out := make([]dto.StockEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toStockEntryResponse(e))
	}
	return out
}
