package entity

import "time"

// StockEntry representa la existencia de un producto en una tienda para una
// talla concreta. Quantity nunca es negativo. La unicidad de
// (producto, tienda, talla) la garantiza el caso de uso, no el esquema.
type StockEntry struct {
	ID        string
	ProductID string
	StoreID   string
	SizeValue string // etiqueta libre: "M", "42", ...
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
