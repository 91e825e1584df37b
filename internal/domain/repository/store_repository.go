package repository

import "github.com/nirs/shop-api/internal/domain/entity"

// StoreRepository define el puerto de persistencia para Store.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	Update(store *entity.Store) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Store, error)
	ListByIDs(ids []string) ([]*entity.Store, error)
}
