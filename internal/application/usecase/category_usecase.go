package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/nirs/shop-api/internal/application/dto"
	"github.com/nirs/shop-api/internal/domain"
	"github.com/nirs/shop-api/internal/domain/catalog"
	"github.com/nirs/shop-api/internal/domain/entity"
	"github.com/nirs/shop-api/internal/domain/repository"
)

// maxCategoryDepth corta la caminata de ancestros ante datos corruptos.
const maxCategoryDepth = 64

// CategoryUseCase casos de uso CRUD para categorías. Asignar un padre
// rechaza la autorreferencia y los ciclos de ancestros.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría; el padre, si se indica, debe existir.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.ParentID != "" {
		parent, err := uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		ParentID:  in.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Update actualiza una categoría. Cambiar el padre valida que no se forme
// un ciclo (la categoría no puede ser ancestro de sí misma).
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.ParentID != nil {
		if *in.ParentID != "" {
			if err := uc.checkNoCycle(id, *in.ParentID); err != nil {
				return nil, err
			}
		}
		category.ParentID = *in.ParentID
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría sin hijas. Con subcategorías presentes falla
// con ErrConflict; los productos que la referencian quedan sin categoría
// (FK declarada ON DELETE SET NULL).
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	children, err := uc.repo.ListByParent(id)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// List lista categorías con paginación en base cero.
func (uc *CategoryUseCase) List(page catalog.PageRequest) ([]dto.CategoryResponse, error) {
	page.Normalize()
	categories, err := uc.repo.List(page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// ListByParent lista las subcategorías directas de una categoría.
func (uc *CategoryUseCase) ListByParent(parentID string) ([]dto.CategoryResponse, error) {
	if parentID != "" {
		parent, err := uc.repo.GetByID(parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}
	categories, err := uc.repo.ListByParent(parentID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// checkNoCycle camina la cadena de padres desde newParentID; si alcanza a
// id, asignar ese padre formaría un ciclo.
func (uc *CategoryUseCase) checkNoCycle(id, newParentID string) error {
	current := newParentID
	for depth := 0; current != ""; depth++ {
		if depth >= maxCategoryDepth {
			return domain.ErrInvalidInput
		}
		if current == id {
			return domain.ErrInvalidInput
		}
		ancestor, err := uc.repo.GetByID(current)
		if err != nil {
			return err
		}
		if ancestor == nil {
			return domain.ErrNotFound
		}
		current = ancestor.ParentID
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
