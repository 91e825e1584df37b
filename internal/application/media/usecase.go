package media

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nirs/shop-api/internal/application/dto"
	"github.com/nirs/shop-api/internal/domain"
	"github.com/nirs/shop-api/internal/domain/entity"
	"github.com/nirs/shop-api/internal/domain/repository"
)

// ImageUseCase mantiene los invariantes de la galería de un producto:
// una sola imagen primaria y display_order contiguo 0..N-1 tras cada
// mutación exitosa. Toda la lógica de "limpiar hermanas y marcar" vive
// aquí, no repartida por los callers.
type ImageUseCase struct {
	imageRepo   repository.ImageRepository
	productRepo repository.ProductRepository
	txRunner    TxRunner
}

// NewImageUseCase construye el caso de uso.
func NewImageUseCase(imageRepo repository.ImageRepository, productRepo repository.ProductRepository, txRunner TxRunner) *ImageUseCase {
	return &ImageUseCase{imageRepo: imageRepo, productRepo: productRepo, txRunner: txRunner}
}

// ListByProduct devuelve la galería ordenada por display_order.
func (uc *ImageUseCase) ListByProduct(productID string) ([]dto.ImageResponse, error) {
	if err := uc.requireProduct(productID); err != nil {
		return nil, err
	}
	images, err := uc.imageRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, *toImageResponse(img))
	}
	return out, nil
}

// GetByID obtiene una imagen por ID.
func (uc *ImageUseCase) GetByID(id string) (*dto.ImageResponse, error) {
	img, err := uc.imageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, domain.ErrNotFound
	}
	return toImageResponse(img), nil
}

// Add añade una imagen al producto. Si es la primera imagen del producto, o
// el caller pide primaria, se limpia la marca de las hermanas y la nueva
// queda como primaria. Un display_order explícito es una posición de
// inserción: las hermanas desde esa posición se corren para que la nueva la
// ocupe. Sin display_order la imagen se añade al final; tras la inserción la
// secuencia se renumera a 0..N-1.
func (uc *ImageUseCase) Add(ctx context.Context, productID string, in dto.CreateImageRequest) (*dto.ImageResponse, error) {
	if in.ProductID != productID {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireProduct(productID); err != nil {
		return nil, err
	}

	img := &entity.ProductImage{
		ID:        uuid.New().String(),
		ProductID: productID,
		ImageURL:  in.ImageURL,
		CreatedAt: time.Now(),
	}
	err := uc.txRunner.RunImages(ctx, func(imageRepo repository.ImageRepository) error {
		siblings, err := imageRepo.ListByProduct(productID)
		if err != nil {
			return err
		}
		if in.DisplayOrder != nil {
			pos := *in.DisplayOrder
			if pos < 0 {
				pos = 0
			}
			if pos > len(siblings) {
				pos = len(siblings)
			}
			img.DisplayOrder = pos
			for _, s := range siblings {
				if s.DisplayOrder < pos {
					continue
				}
				if err := imageRepo.UpdateDisplayOrder(s.ID, s.DisplayOrder+1); err != nil {
					return err
				}
			}
		} else {
			img.DisplayOrder = len(siblings)
		}
		wantPrimary := len(siblings) == 0 || (in.IsPrimary != nil && *in.IsPrimary)
		if wantPrimary {
			if err := imageRepo.ClearPrimary(productID); err != nil {
				return err
			}
			img.IsPrimary = true
		}
		if err := imageRepo.Create(img); err != nil {
			return err
		}
		return renumber(imageRepo, productID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(img.ID)
}

// Update actualiza una imagen. Si el caller pide primaria se limpia la marca
// de las hermanas primero; actualizar campos no primarios nunca toca el
// estado de las hermanas. Pedir is_primary=false se ignora: la invariante de
// primaria única se mantiene promoviendo, no desmarcando.
func (uc *ImageUseCase) Update(ctx context.Context, productID, imageID string, in dto.UpdateImageRequest) (*dto.ImageResponse, error) {
	img, err := uc.ownedImage(productID, imageID)
	if err != nil {
		return nil, err
	}
	err = uc.txRunner.RunImages(ctx, func(imageRepo repository.ImageRepository) error {
		if in.ImageURL != nil {
			img.ImageURL = *in.ImageURL
		}
		if in.DisplayOrder != nil {
			img.DisplayOrder = *in.DisplayOrder
		}
		if in.IsPrimary != nil && *in.IsPrimary {
			if err := imageRepo.ClearPrimary(productID); err != nil {
				return err
			}
			img.IsPrimary = true
		}
		if err := imageRepo.Update(img); err != nil {
			return err
		}
		if in.DisplayOrder != nil {
			return renumber(imageRepo, productID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(imageID)
}

// Delete elimina una imagen. Si era la primaria y quedan hermanas, se
// promueve la de menor display_order; la secuencia restante se renumera.
func (uc *ImageUseCase) Delete(ctx context.Context, productID, imageID string) error {
	img, err := uc.ownedImage(productID, imageID)
	if err != nil {
		return err
	}
	wasPrimary := img.IsPrimary
	return uc.txRunner.RunImages(ctx, func(imageRepo repository.ImageRepository) error {
		if err := imageRepo.Delete(imageID); err != nil {
			return err
		}
		remaining, err := imageRepo.ListByProduct(productID)
		if err != nil {
			return err
		}
		if wasPrimary && len(remaining) > 0 {
			if err := imageRepo.SetPrimary(remaining[0].ID); err != nil {
				return err
			}
		}
		return renumberImages(imageRepo, remaining)
	})
}

// SetPrimary marca la imagen como primaria del producto, limpiando la marca
// de todas las hermanas.
func (uc *ImageUseCase) SetPrimary(ctx context.Context, productID, imageID string) (*dto.ImageResponse, error) {
	if _, err := uc.ownedImage(productID, imageID); err != nil {
		return nil, err
	}
	err := uc.txRunner.RunImages(ctx, func(imageRepo repository.ImageRepository) error {
		if err := imageRepo.ClearPrimary(productID); err != nil {
			return err
		}
		return imageRepo.SetPrimary(imageID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(imageID)
}

// Reorder asigna display_order = índice para cada ID en el orden dado. Las
// imágenes no listadas se renumeran a continuación conservando su orden
// relativo previo, de modo que la secuencia resultante siempre es una
// permutación contigua 0..N-1.
func (uc *ImageUseCase) Reorder(ctx context.Context, productID string, imageIDs []string) error {
	if err := uc.requireProduct(productID); err != nil {
		return err
	}
	if len(imageIDs) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunImages(ctx, func(imageRepo repository.ImageRepository) error {
		images, err := imageRepo.ListByProduct(productID)
		if err != nil {
			return err
		}
		byID := make(map[string]*entity.ProductImage, len(images))
		for _, img := range images {
			byID[img.ID] = img
		}
		listed := make(map[string]bool, len(imageIDs))
		for i, id := range imageIDs {
			img, ok := byID[id]
			if !ok || listed[id] {
				return domain.ErrInvalidInput
			}
			listed[id] = true
			if err := imageRepo.UpdateDisplayOrder(img.ID, i); err != nil {
				return err
			}
		}
		// Las no listadas continúan después, en su orden relativo previo.
		next := len(imageIDs)
		for _, img := range images {
			if listed[img.ID] {
				continue
			}
			if err := imageRepo.UpdateDisplayOrder(img.ID, next); err != nil {
				return err
			}
			next++
		}
		return nil
	})
}

// requireProduct valida que el producto exista.
func (uc *ImageUseCase) requireProduct(productID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return nil
}

// ownedImage valida producto e imagen y que la imagen pertenezca al producto.
func (uc *ImageUseCase) ownedImage(productID, imageID string) (*entity.ProductImage, error) {
	if err := uc.requireProduct(productID); err != nil {
		return nil, err
	}
	img, err := uc.imageRepo.GetByID(imageID)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, domain.ErrNotFound
	}
	if img.ProductID != productID {
		return nil, domain.ErrInvalidInput
	}
	return img, nil
}

// renumber compacta display_order a 0..N-1 según el orden actual.
func renumber(imageRepo repository.ImageRepository, productID string) error {
	images, err := imageRepo.ListByProduct(productID)
	if err != nil {
		return err
	}
	return renumberImages(imageRepo, images)
}

func renumberImages(imageRepo repository.ImageRepository, images []*entity.ProductImage) error {
	for i, img := range images {
		if img.DisplayOrder == i {
			continue
		}
		if err := imageRepo.UpdateDisplayOrder(img.ID, i); err != nil {
			return err
		}
	}
	return nil
}

func toImageResponse(img *entity.ProductImage) *dto.ImageResponse {
	return &dto.ImageResponse{
		ID:           img.ID,
		ProductID:    img.ProductID,
		ImageURL:     img.ImageURL,
		IsPrimary:    img.IsPrimary,
		DisplayOrder: img.DisplayOrder,
		CreatedAt:    img.CreatedAt,
	}
}
