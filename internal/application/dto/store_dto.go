package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStoreRequest entrada para crear una tienda.
type CreateStoreRequest struct {
	Address string          `json:"address" validate:"required,min=1,max=300"`
	Phone   string          `json:"phone" validate:"max=30"`
	Rent    decimal.Decimal `json:"rent"`
	Rating  float64         `json:"rating" validate:"gte=0,lte=5"`
}

// UpdateStoreRequest entrada para actualizar una tienda (campos opcionales).
type UpdateStoreRequest struct {
	Address *string          `json:"address" validate:"omitempty,min=1,max=300"`
	Phone   *string          `json:"phone" validate:"omitempty,max=30"`
	Rent    *decimal.Decimal `json:"rent"`
	Rating  *float64         `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID        string          `json:"id"`
	Address   string          `json:"address"`
	Phone     string          `json:"phone"`
	Rent      decimal.Decimal `json:"rent"`
	Rating    float64         `json:"rating"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StoreListResponse lista paginada de tiendas.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
