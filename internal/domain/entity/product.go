package entity

import "time"

// Product representa un artículo del catálogo. Article es único a nivel global;
// Price se expresa en unidades menores (sin decimales). El stock por tienda y
// talla vive en StockEntry; las imágenes en ProductImage.
type Product struct {
	ID          string
	Name        string
	Article     string // código de artículo, único
	Price       int64
	Weight      int
	Description string
	Gender      string
	Rating      float64
	CategoryID  *string // nil si no tiene categoría
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
