package repository

import (
	"github.com/nirs/shop-api/internal/domain/catalog"
	"github.com/nirs/shop-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByArticle(article string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// FindByFilters aplica la conjunción de los predicados presentes en el
	// filtro con paginación. Devuelve la página y el total de coincidencias.
	// El orden es estable entre páginas de una misma consulta.
	FindByFilters(filter catalog.Filter, page catalog.PageRequest) ([]*entity.Product, int, error)
}
