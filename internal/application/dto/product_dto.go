package dto

import "time"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Article     string  `json:"article" validate:"required,min=1,max=100"`
	Price       int64   `json:"price" validate:"gte=0"`
	Weight      int     `json:"weight" validate:"gte=0"`
	Description string  `json:"description"`
	Gender      string  `json:"gender"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	CategoryID  *string `json:"category_id"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Article     *string  `json:"article" validate:"omitempty,min=1,max=100"`
	Price       *int64   `json:"price" validate:"omitempty,gte=0"`
	Weight      *int     `json:"weight" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Gender      *string  `json:"gender"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	CategoryID  *string  `json:"category_id"`
	// ClearCategory desasocia la categoría (CategoryID nil significa "no tocar").
	ClearCategory bool `json:"clear_category"`
}

// ProductResponse salida de un producto con sus agregados de catálogo:
// imagen primaria, galería ordenada, tallas disponibles y cantidad total.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Article         string          `json:"article"`
	Price           int64           `json:"price"`
	Weight          int             `json:"weight"`
	Description     string          `json:"description"`
	Gender          string          `json:"gender"`
	Rating          float64         `json:"rating"`
	CategoryID      *string         `json:"category_id"`
	PrimaryImageURL string          `json:"primary_image_url,omitempty"`
	Images          []ImageResponse `json:"images"`
	AvailableSizes  []string        `json:"available_sizes"`
	TotalQuantity   int             `json:"total_quantity"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
