package dto

import "time"

// CreateImageRequest entrada para añadir una imagen a un producto.
// ProductID debe coincidir con el productId de la ruta.
type CreateImageRequest struct {
	ProductID    string `json:"product_id" validate:"required"`
	ImageURL     string `json:"image_url" validate:"required,max=2048"`
	IsPrimary    *bool  `json:"is_primary"`
	DisplayOrder *int   `json:"display_order" validate:"omitempty,gte=0"`
}

// UpdateImageRequest entrada para actualizar una imagen (campos opcionales).
type UpdateImageRequest struct {
	ImageURL     *string `json:"image_url" validate:"omitempty,max=2048"`
	IsPrimary    *bool   `json:"is_primary"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
}

// ReorderImagesRequest lista ordenada de IDs de imagen; el índice en la lista
// pasa a ser el display_order. Las imágenes no listadas se renumeran a
// continuación conservando su orden relativo.
type ReorderImagesRequest struct {
	ImageIDs []string `json:"image_ids" validate:"required,min=1,dive,required"`
}

// ImageResponse salida de una imagen.
type ImageResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ImageURL     string    `json:"image_url"`
	IsPrimary    bool      `json:"is_primary"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
