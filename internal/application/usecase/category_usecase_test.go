package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirs/shop-api/internal/application/dto"
	"github.com/nirs/shop-api/internal/application/usecase"
	"github.com/nirs/shop-api/internal/domain"
)

func newCategoryFixture(t *testing.T) (*usecase.CategoryUseCase, *fakeCategoryRepo) {
	t.Helper()
	repo := newFakeCategoryRepo()
	return usecase.NewCategoryUseCase(repo), repo
}

func createCategory(t *testing.T, uc *usecase.CategoryUseCase, name, parentID string) dto.CategoryResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateCategoryRequest{Name: name, ParentID: parentID})
	require.NoError(t, err)
	return *out
}

func TestCategoryCreate_PadreInexistente(t *testing.T) {
	uc, _ := newCategoryFixture(t)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Calzado", ParentID: "no-such"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUpdate_AutorreferenciaEsInvalida(t *testing.T) {
	uc, _ := newCategoryFixture(t)

	c := createCategory(t, uc, "Calzado", "")

	parent := c.ID
	_, err := uc.Update(c.ID, dto.UpdateCategoryRequest{ParentID: &parent})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "una categoría no puede ser su propio padre")
}

// Colgar la raíz de su nieta formaría un ciclo: raíz → hija → nieta → raíz.
func TestCategoryUpdate_CicloDeAncestrosEsInvalido(t *testing.T) {
	uc, _ := newCategoryFixture(t)

	root := createCategory(t, uc, "Calzado", "")
	child := createCategory(t, uc, "Zapatillas", root.ID)
	grandchild := createCategory(t, uc, "Running", child.ID)

	parent := grandchild.ID
	_, err := uc.Update(root.ID, dto.UpdateCategoryRequest{ParentID: &parent})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Mover una subcategoría a otra rama es válido.
func TestCategoryUpdate_ReparentarSinCiclo(t *testing.T) {
	uc, _ := newCategoryFixture(t)

	rootA := createCategory(t, uc, "Calzado", "")
	rootB := createCategory(t, uc, "Ropa", "")
	child := createCategory(t, uc, "Zapatillas", rootA.ID)

	parent := rootB.ID
	out, err := uc.Update(child.ID, dto.UpdateCategoryRequest{ParentID: &parent})
	require.NoError(t, err)
	assert.Equal(t, rootB.ID, out.ParentID)
}

// ParentID vacío convierte la categoría en raíz.
func TestCategoryUpdate_QuitarPadre(t *testing.T) {
	uc, _ := newCategoryFixture(t)

	root := createCategory(t, uc, "Calzado", "")
	child := createCategory(t, uc, "Zapatillas", root.ID)

	empty := ""
	out, err := uc.Update(child.ID, dto.UpdateCategoryRequest{ParentID: &empty})
	require.NoError(t, err)
	assert.Empty(t, out.ParentID)
}

func TestCategoryDelete_ConHijasEsConflicto(t *testing.T) {
	uc, repo := newCategoryFixture(t)

	root := createCategory(t, uc, "Calzado", "")
	createCategory(t, uc, "Zapatillas", root.ID)

	err := uc.Delete(root.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	still, err := repo.GetByID(root.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestCategoryDelete_Hoja(t *testing.T) {
	uc, repo := newCategoryFixture(t)

	root := createCategory(t, uc, "Calzado", "")
	leaf := createCategory(t, uc, "Zapatillas", root.ID)

	require.NoError(t, uc.Delete(leaf.ID))

	gone, err := repo.GetByID(leaf.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCategoryListByParent_DevuelveHijasDirectas(t *testing.T) {
	uc, _ := newCategoryFixture(t)

	root := createCategory(t, uc, "Calzado", "")
	a := createCategory(t, uc, "Zapatillas", root.ID)
	b := createCategory(t, uc, "Botas", root.ID)
	createCategory(t, uc, "Running", a.ID) // nieta, no debe aparecer

	children, err := uc.ListByParent(root.ID)
	require.NoError(t, err)
	ids := make([]string, 0, len(children))
	for _, c := range children {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ids)
}

func TestCategoryListByParent_PadreInexistente(t *testing.T) {
	uc, _ := newCategoryFixture(t)

	_, err := uc.ListByParent("no-such")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
