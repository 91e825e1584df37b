package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Store representa una tienda física. Raíz de agregado independiente:
// Product no la posee, solo la referencia vía StockEntry.
type Store struct {
	ID        string
	Address   string
	Phone     string
	Rent      decimal.Decimal
	Rating    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
