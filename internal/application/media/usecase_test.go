package media_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirs/shop-api/internal/application/dto"
	"github.com/nirs/shop-api/internal/application/media"
	"github.com/nirs/shop-api/internal/domain"
	"github.com/nirs/shop-api/internal/domain/catalog"
	"github.com/nirs/shop-api/internal/domain/entity"
	"github.com/nirs/shop-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeImageRepo struct {
	images map[string]*entity.ProductImage
	seq    int
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: map[string]*entity.ProductImage{}}
}

func (r *fakeImageRepo) Create(img *entity.ProductImage) error {
	cp := *img
	r.seq++
	cp.CreatedAt = cp.CreatedAt.AddDate(0, 0, r.seq) // orden de inserción estable
	r.images[cp.ID] = &cp
	img.CreatedAt = cp.CreatedAt
	return nil
}

func (r *fakeImageRepo) GetByID(id string) (*entity.ProductImage, error) {
	img, ok := r.images[id]
	if !ok {
		return nil, nil
	}
	cp := *img
	return &cp, nil
}

func (r *fakeImageRepo) Update(img *entity.ProductImage) error {
	cp := *img
	r.images[cp.ID] = &cp
	return nil
}

func (r *fakeImageRepo) Delete(id string) error {
	delete(r.images, id)
	return nil
}

func (r *fakeImageRepo) ListByProduct(productID string) ([]*entity.ProductImage, error) {
	var list []*entity.ProductImage
	for _, img := range r.images {
		if img.ProductID == productID {
			cp := *img
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].DisplayOrder != list[j].DisplayOrder {
			return list[i].DisplayOrder < list[j].DisplayOrder
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func (r *fakeImageRepo) ClearPrimary(productID string) error {
	for _, img := range r.images {
		if img.ProductID == productID {
			img.IsPrimary = false
		}
	}
	return nil
}

func (r *fakeImageRepo) SetPrimary(id string) error {
	if img, ok := r.images[id]; ok {
		img.IsPrimary = true
	}
	return nil
}

func (r *fakeImageRepo) UpdateDisplayOrder(id string, order int) error {
	if img, ok := r.images[id]; ok {
		img.DisplayOrder = order
	}
	return nil
}

func (r *fakeImageRepo) DeleteByProduct(productID string) error {
	for id, img := range r.images {
		if img.ProductID == productID {
			delete(r.images, id)
		}
	}
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetByArticle(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error                 { return nil }
func (r *fakeProductRepo) Delete(id string) error                       { delete(r.products, id); return nil }
func (r *fakeProductRepo) FindByFilters(catalog.Filter, catalog.PageRequest) ([]*entity.Product, int, error) {
	return nil, 0, nil
}

// fakeTxRunner ejecuta el callback directamente sobre el repo compartido.
type fakeTxRunner struct {
	imageRepo repository.ImageRepository
}

func (r *fakeTxRunner) RunImages(_ context.Context, fn func(repository.ImageRepository) error) error {
	return fn(r.imageRepo)
}

func newUseCase(t *testing.T) (*media.ImageUseCase, *fakeImageRepo) {
	t.Helper()
	imageRepo := newFakeImageRepo()
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Zapatilla urbana", Article: "ART-001"},
		"prod-2": {ID: "prod-2", Name: "Bota de cuero", Article: "ART-002"},
	}}
	return media.NewImageUseCase(imageRepo, productRepo, &fakeTxRunner{imageRepo: imageRepo}), imageRepo
}

func addImage(t *testing.T, uc *media.ImageUseCase, productID, url string, primary *bool) dto.ImageResponse {
	t.Helper()
	out, err := uc.Add(context.Background(), productID, dto.CreateImageRequest{
		ProductID: productID,
		ImageURL:  url,
		IsPrimary: primary,
	})
	require.NoError(t, err)
	return *out
}

func boolPtr(b bool) *bool { return &b }

// assertGalleryInvariants verifica primaria única y display_order contiguo 0..N-1.
func assertGalleryInvariants(t *testing.T, repo *fakeImageRepo, productID string) {
	t.Helper()
	images, err := repo.ListByProduct(productID)
	require.NoError(t, err)
	primaries := 0
	for i, img := range images {
		assert.Equal(t, i, img.DisplayOrder, "display_order debe ser contiguo 0..N-1")
		if img.IsPrimary {
			primaries++
		}
	}
	if len(images) > 0 {
		assert.Equal(t, 1, primaries, "debe haber exactamente una imagen primaria")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

// La primera imagen queda primaria aunque el caller pida is_primary=false.
func TestAdd_PrimeraImagenQuedaPrimaria(t *testing.T) {
	uc, repo := newUseCase(t)

	out := addImage(t, uc, "prod-1", "https://img/a.jpg", boolPtr(false))

	assert.True(t, out.IsPrimary, "la primera imagen del producto debe quedar primaria")
	assert.Equal(t, 0, out.DisplayOrder)
	assertGalleryInvariants(t, repo, "prod-1")
}

// Añadir con is_primary=true desmarca a la primaria anterior.
func TestAdd_NuevaPrimariaDesmarcaAnterior(t *testing.T) {
	uc, repo := newUseCase(t)

	a := addImage(t, uc, "prod-1", "https://img/a.jpg", nil)
	b := addImage(t, uc, "prod-1", "https://img/b.jpg", boolPtr(true))

	assert.True(t, b.IsPrimary)
	got, err := uc.GetByID(a.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPrimary, "la primaria anterior debe quedar desmarcada")
	assertGalleryInvariants(t, repo, "prod-1")
}

// Añadir sin pedir primaria no toca las marcas de las hermanas.
func TestAdd_SinPrimariaNoTocaHermanas(t *testing.T) {
	uc, repo := newUseCase(t)

	a := addImage(t, uc, "prod-1", "https://img/a.jpg", nil)
	b := addImage(t, uc, "prod-1", "https://img/b.jpg", nil)

	got, err := uc.GetByID(a.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPrimary, "la primaria original no debe cambiar")
	assert.False(t, b.IsPrimary)
	assert.Equal(t, 1, b.DisplayOrder, "la nueva imagen se añade al final")
	assertGalleryInvariants(t, repo, "prod-1")
}

// Un display_order pedido es una posición de inserción: la nueva imagen la
// ocupa y las hermanas desde esa posición se corren.
func TestAdd_PosicionPedidaCorreHermanas(t *testing.T) {
	uc, repo := newUseCase(t)

	a := addImage(t, uc, "prod-1", "https://img/a.jpg", nil)
	b := addImage(t, uc, "prod-1", "https://img/b.jpg", nil)

	pos := 0
	c, err := uc.Add(context.Background(), "prod-1", dto.CreateImageRequest{
		ProductID:    "prod-1",
		ImageURL:     "https://img/c.jpg",
		DisplayOrder: &pos,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, c.DisplayOrder, "la nueva imagen gana la posición pedida")
	gotA, err := uc.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotA.DisplayOrder)
	gotB, err := uc.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, gotB.DisplayOrder)
	assertGalleryInvariants(t, repo, "prod-1")
}

// Una posición más allá del final se ajusta al final.
func TestAdd_PosicionFueraDeRangoSeAjusta(t *testing.T) {
	uc, repo := newUseCase(t)

	addImage(t, uc, "prod-1", "https://img/a.jpg", nil)

	pos := 99
	c, err := uc.Add(context.Background(), "prod-1", dto.CreateImageRequest{
		ProductID:    "prod-1",
		ImageURL:     "https://img/b.jpg",
		DisplayOrder: &pos,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, c.DisplayOrder)
	assertGalleryInvariants(t, repo, "prod-1")
}

// El product_id del cuerpo debe coincidir con el de la ruta.
func TestAdd_ProductIDDistintoEnCuerpo_EsInvalido(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Add(context.Background(), "prod-1", dto.CreateImageRequest{
		ProductID: "prod-2",
		ImageURL:  "https://img/a.jpg",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Producto inexistente → NotFound.
func TestAdd_ProductoInexistente(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Add(context.Background(), "no-such", dto.CreateImageRequest{
		ProductID: "no-such",
		ImageURL:  "https://img/a.jpg",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

// Al borrar la primaria, la sobreviviente de menor display_order la releva.
func TestDelete_PrimariaPromueveSobreviviente(t *testing.T) {
	uc, repo := newUseCase(t)

	a := addImage(t, uc, "prod-1", "https://img/a.jpg", nil)           // primaria
	b := addImage(t, uc, "prod-1", "https://img/b.jpg", boolPtr(true)) // nueva primaria

	require.NoError(t, uc.Delete(context.Background(), "prod-1", b.ID))

	got, err := uc.GetByID(a.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPrimary, "A debe volver a ser primaria al borrar B")
	assert.Equal(t, 0, got.DisplayOrder)
	assertGalleryInvariants(t, repo, "prod-1")
}

// Borrar una no primaria deja primaria y orden compactado.
func TestDelete_NoPrimariaCompactaOrden(t *testing.T) {
	uc, repo := newUseCase(t)

	a := addImage(t, uc, "prod-1", "https://img/a.jpg", nil)
	b := addImage(t, uc, "prod-1", "https://img/b.jpg", nil)
	c := addImage(t, uc, "prod-1", "https://img/c.jpg", nil)

	require.NoError(t, uc.Delete(context.Background(), "prod-1", b.ID))

	gotA, err := uc.GetByID(a.ID)
	require.NoError(t, err)
	gotC, err := uc.GetByID(c.ID)
	require.NoError(t, err)
	assert.True(t, gotA.IsPrimary)
	assert.Equal(t, 0, gotA.DisplayOrder)
	assert.Equal(t, 1, gotC.DisplayOrder, "el hueco debe compactarse")
	assertGalleryInvariants(t, repo, "prod-1")
}

// La imagen debe pertenecer al producto indicado.
func TestDelete_ImagenDeOtroProducto_EsInvalido(t *testing.T) {
	uc, _ := newUseCase(t)

	a := addImage(t, uc, "prod-1", "https://img/a.jpg", nil)

	err := uc.Delete(context.Background(), "prod-2", a.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update y SetPrimary
// ──────────────────────────────────────────────────────────────────────────────

// is_primary=false en update se ignora: la invariante se mantiene promoviendo.
func TestUpdate_PrimariaFalseSeIgnora(t *testing.T) {
	uc, repo := newUseCase(t)

	a := addImage(t, uc, "prod-1", "https://img/a.jpg", nil)

	out, err := uc.Update(context.Background(), "prod-1", a.ID, dto.UpdateImageRequest{
		IsPrimary: boolPtr(false),
	})
	require.NoError(t, err)
	assert.True(t, out.IsPrimary, "desmarcar la única primaria se ignora")
	assertGalleryInvariants(t, repo, "prod-1")
}

func TestSetPrimary_CambiaLaMarca(t *testing.T) {
	uc, repo := newUseCase(t)

	a := addImage(t, uc, "prod-1", "https://img/a.jpg", nil)
	b := addImage(t, uc, "prod-1", "https://img/b.jpg", nil)

	out, err := uc.SetPrimary(context.Background(), "prod-1", b.ID)
	require.NoError(t, err)
	assert.True(t, out.IsPrimary)

	gotA, err := uc.GetByID(a.ID)
	require.NoError(t, err)
	assert.False(t, gotA.IsPrimary)
	assertGalleryInvariants(t, repo, "prod-1")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reorder
// ──────────────────────────────────────────────────────────────────────────────

// reorder([c, a, b]) → c=0, a=1, b=2.
func TestReorder_PermutacionCompleta(t *testing.T) {
	uc, repo := newUseCase(t)

	a := addImage(t, uc, "prod-1", "https://img/a.jpg", nil)
	b := addImage(t, uc, "prod-1", "https://img/b.jpg", nil)
	c := addImage(t, uc, "prod-1", "https://img/c.jpg", nil)

	require.NoError(t, uc.Reorder(context.Background(), "prod-1", []string{c.ID, a.ID, b.ID}))

	images, err := uc.ListByProduct("prod-1")
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, c.ID, images[0].ID)
	assert.Equal(t, a.ID, images[1].ID)
	assert.Equal(t, b.ID, images[2].ID)
	assertGalleryInvariants(t, repo, "prod-1")
}

// Las imágenes no listadas continúan después conservando su orden relativo.
func TestReorder_ParcialRenumeraNoListadas(t *testing.T) {
	uc, repo := newUseCase(t)

	a := addImage(t, uc, "prod-1", "https://img/a.jpg", nil)
	b := addImage(t, uc, "prod-1", "https://img/b.jpg", nil)
	c := addImage(t, uc, "prod-1", "https://img/c.jpg", nil)

	require.NoError(t, uc.Reorder(context.Background(), "prod-1", []string{c.ID}))

	images, err := uc.ListByProduct("prod-1")
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, c.ID, images[0].ID, "la listada toma el frente")
	assert.Equal(t, a.ID, images[1].ID, "las no listadas conservan su orden relativo")
	assert.Equal(t, b.ID, images[2].ID)
	assertGalleryInvariants(t, repo, "prod-1")
}

func TestReorder_IDDesconocido_EsInvalido(t *testing.T) {
	uc, _ := newUseCase(t)

	a := addImage(t, uc, "prod-1", "https://img/a.jpg", nil)

	err := uc.Reorder(context.Background(), "prod-1", []string{a.ID, "no-such"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReorder_IDDuplicado_EsInvalido(t *testing.T) {
	uc, _ := newUseCase(t)

	a := addImage(t, uc, "prod-1", "https://img/a.jpg", nil)

	err := uc.Reorder(context.Background(), "prod-1", []string{a.ID, a.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReorder_ListaVacia_EsInvalido(t *testing.T) {
	uc, _ := newUseCase(t)

	err := uc.Reorder(context.Background(), "prod-1", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
