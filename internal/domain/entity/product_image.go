package entity

import "time"

// ProductImage es una imagen de la galería de un producto.
// Invariantes (mantenidos por el caso de uso media):
//   - con ≥1 imagen, exactamente una tiene IsPrimary = true;
//   - los DisplayOrder del producto forman una permutación contigua 0..N-1.
type ProductImage struct {
	ID           string
	ProductID    string
	ImageURL     string
	IsPrimary    bool
	DisplayOrder int
	CreatedAt    time.Time
}
