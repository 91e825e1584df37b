package catalog

// Filter agrupa los predicados opcionales de búsqueda del catálogo.
// Un campo nil (o slice vacío) no restringe nada; todos los predicados
// presentes se combinan con AND.
type Filter struct {
	CategoryID *string
	MinPrice   *int64
	MaxPrice   *int64
	Gender     *string
	SizeValues []string
	Search     *string // substring sobre nombre o artículo, sin mayúsculas
	InStock    *bool
	StoreID    *string // solo relevante con InStock = true
	MinRating  *float64
}

// IsEmpty indica que ningún predicado fue provisto (listado sin filtrar).
func (f Filter) IsEmpty() bool {
	return f.CategoryID == nil && f.MinPrice == nil && f.MaxPrice == nil &&
		f.Gender == nil && len(f.SizeValues) == 0 && f.Search == nil &&
		f.InStock == nil && f.MinRating == nil
}

const (
	// DefaultPageSize tamaño de página cuando el caller no lo indica.
	DefaultPageSize = 20
	// MaxPageSize tope del tamaño de página.
	MaxPageSize = 100
)

// PageRequest paginación con índice de página en base cero.
type PageRequest struct {
	Page     int
	PageSize int
}

// Normalize aplica defaults y el tope de tamaño de página.
func (p *PageRequest) Normalize() {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset devuelve el desplazamiento SQL equivalente.
func (p PageRequest) Offset() int {
	return p.Page * p.PageSize
}
