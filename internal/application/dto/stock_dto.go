package dto

import "time"

// CreateStockEntryRequest entrada para crear una fila de stock
// (producto × tienda × talla).
type CreateStockEntryRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	StoreID   string `json:"store_id" validate:"required"`
	SizeValue string `json:"size_value" validate:"required,max=20"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// UpdateStockEntryRequest entrada para actualizar una fila de stock.
// Permite reasignar producto o tienda (validando existencia).
type UpdateStockEntryRequest struct {
	ProductID *string `json:"product_id"`
	StoreID   *string `json:"store_id"`
	SizeValue *string `json:"size_value" validate:"omitempty,max=20"`
	Quantity  *int    `json:"quantity" validate:"omitempty,gte=0"`
}

// StockEntryResponse salida de una fila de stock.
type StockEntryResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	StoreID   string    `json:"store_id"`
	SizeValue string    `json:"size_value"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockEntryListResponse lista paginada de filas de stock.
type StockEntryListResponse struct {
	Items []StockEntryResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
