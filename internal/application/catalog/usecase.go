package catalog

import (
	"github.com/nirs/shop-api/internal/application/dto"
	"github.com/nirs/shop-api/internal/domain/catalog"
	"github.com/nirs/shop-api/internal/domain/entity"
	"github.com/nirs/shop-api/internal/domain/repository"
)

// SearchUseCase resuelve la búsqueda filtrada del catálogo y arma el DTO de
// producto con sus agregados: galería ordenada, imagen primaria, tallas
// disponibles y cantidad total.
type SearchUseCase struct {
	productRepo repository.ProductRepository
	imageRepo   repository.ImageRepository
	stockRepo   repository.StockRepository
}

// NewSearchUseCase construye el caso de uso.
func NewSearchUseCase(
	productRepo repository.ProductRepository,
	imageRepo repository.ImageRepository,
	stockRepo repository.StockRepository,
) *SearchUseCase {
	return &SearchUseCase{productRepo: productRepo, imageRepo: imageRepo, stockRepo: stockRepo}
}

// FindByFilters aplica la conjunción de los predicados presentes y devuelve
// la página pedida. Los parámetros ausentes no restringen nada; el orden de
// resultados es estable entre páginas de una misma consulta.
func (uc *SearchUseCase) FindByFilters(filter catalog.Filter, page catalog.PageRequest) (*dto.ProductListResponse, error) {
	page.Normalize()
	products, total, err := uc.productRepo.FindByFilters(filter, page)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp, err := uc.BuildProductResponse(p)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// BuildProductResponse arma el DTO completo de un producto consultando sus
// imágenes y el agregado de stock.
func (uc *SearchUseCase) BuildProductResponse(p *entity.Product) (*dto.ProductResponse, error) {
	images, err := uc.imageRepo.ListByProduct(p.ID)
	if err != nil {
		return nil, err
	}
	sizes, err := uc.stockRepo.DistinctSizes(p.ID)
	if err != nil {
		return nil, err
	}
	if sizes == nil {
		sizes = []string{}
	}
	total, err := uc.stockRepo.TotalQuantity(p.ID)
	if err != nil {
		return nil, err
	}

	imgDTOs := make([]dto.ImageResponse, 0, len(images))
	primaryURL := ""
	for _, img := range images {
		if img.IsPrimary {
			primaryURL = img.ImageURL
		}
		imgDTOs = append(imgDTOs, dto.ImageResponse{
			ID:           img.ID,
			ProductID:    img.ProductID,
			ImageURL:     img.ImageURL,
			IsPrimary:    img.IsPrimary,
			DisplayOrder: img.DisplayOrder,
			CreatedAt:    img.CreatedAt,
		})
	}
	// Sin primaria marcada (galería vacía no aplica): cae a la primera.
	if primaryURL == "" && len(images) > 0 {
		primaryURL = images[0].ImageURL
	}

	return &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Article:         p.Article,
		Price:           p.Price,
		Weight:          p.Weight,
		Description:     p.Description,
		Gender:          p.Gender,
		Rating:          p.Rating,
		CategoryID:      p.CategoryID,
		PrimaryImageURL: primaryURL,
		Images:          imgDTOs,
		AvailableSizes:  sizes,
		TotalQuantity:   total,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}, nil
}
