package entity

import "time"

// Category representa una categoría de productos (árbol opcional).
type Category struct {
	ID        string
	Name      string
	ParentID  string // vacío si es raíz
	CreatedAt time.Time
	UpdatedAt time.Time
}
