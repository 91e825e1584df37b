package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	appcatalog "github.com/nirs/shop-api/internal/application/catalog"
	"github.com/nirs/shop-api/internal/application/dto"
	"github.com/nirs/shop-api/internal/domain"
	"github.com/nirs/shop-api/internal/domain/entity"
	"github.com/nirs/shop-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock y las imágenes
// se mutan por sus propios casos de uso; aquí solo se consultan para armar
// la respuesta.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	txRunner     ProductTxRunner
	search       *appcatalog.SearchUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	txRunner ProductTxRunner,
	search *appcatalog.SearchUseCase,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		txRunner:     txRunner,
		search:       search,
	}
}

// Create crea un producto. Article es único a nivel global.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.productRepo.GetByArticle(in.Article)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.CategoryID != nil {
		if err := uc.requireCategory(*in.CategoryID); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Article:     in.Article,
		Price:       in.Price,
		Weight:      in.Weight,
		Description: in.Description,
		Gender:      in.Gender,
		Rating:      in.Rating,
		CategoryID:  in.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return uc.search.BuildProductResponse(product)
}

// GetByID obtiene un producto con sus agregados de catálogo.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.search.BuildProductResponse(product)
}

// Update actualiza un producto. Cambiar el artículo re-verifica unicidad.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Article != nil && *in.Article != product.Article {
		existing, err := uc.productRepo.GetByArticle(*in.Article)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.Article = *in.Article
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Weight != nil {
		product.Weight = *in.Weight
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Gender != nil {
		product.Gender = *in.Gender
	}
	if in.Rating != nil {
		product.Rating = *in.Rating
	}
	switch {
	case in.ClearCategory:
		product.CategoryID = nil
	case in.CategoryID != nil:
		if err := uc.requireCategory(*in.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = in.CategoryID
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.search.BuildProductResponse(product)
}

// Delete elimina un producto y sus imágenes en la misma transacción
// (cascada explícita). Las filas de stock NO se borran en cascada: si
// existen, la operación falla con ErrConflict — contrato documentado del
// dueño de los datos, no un default de anotaciones.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunProduct(ctx, func(
		productRepo repository.ProductRepository,
		imageRepo repository.ImageRepository,
		stockRepo repository.StockRepository,
	) error {
		product, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		hasStock, err := stockRepo.ExistsForProduct(id)
		if err != nil {
			return err
		}
		if hasStock {
			return domain.ErrConflict
		}
		if err := imageRepo.DeleteByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}

func (uc *ProductUseCase) requireCategory(categoryID string) error {
	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return nil
}
