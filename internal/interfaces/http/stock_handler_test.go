package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirs/shop-api/internal/application/stock"
	"github.com/nirs/shop-api/internal/domain/entity"
	"github.com/nirs/shop-api/internal/domain/repository"
	apphttp "github.com/nirs/shop-api/internal/interfaces/http"
)

// fakeQuantityRepo implementa solo lo que tocan los endpoints de cantidad.
type fakeQuantityRepo struct {
	repository.StockRepository

	entries map[string]*entity.StockEntry
}

func (r *fakeQuantityRepo) GetByID(id string) (*entity.StockEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeQuantityRepo) GetForUpdate(id string) (*entity.StockEntry, error) {
	return r.GetByID(id)
}

func (r *fakeQuantityRepo) Update(e *entity.StockEntry) error {
	cp := *e
	r.entries[cp.ID] = &cp
	return nil
}

type fakeStockTxRunner struct {
	repo repository.StockRepository
}

func (r *fakeStockTxRunner) Run(_ context.Context, fn func(repository.StockRepository) error) error {
	return fn(r.repo)
}

func newStockApp(t *testing.T) (*fiber.App, *fakeQuantityRepo) {
	t.Helper()
	repo := &fakeQuantityRepo{entries: map[string]*entity.StockEntry{
		"row-1": {ID: "row-1", ProductID: "prod-1", StoreID: "store-1", SizeValue: "40", Quantity: 7},
	}}
	uc := stock.NewStockUseCase(repo, nil, nil, &fakeStockTxRunner{repo: repo}, nil, nil)
	handler := apphttp.NewStockHandler(uc)

	app := fiber.New()
	app.Patch("/api/product-store-sizes/:id/adjust", handler.Adjust)
	app.Patch("/api/product-store-sizes/:id/quantity", handler.SetQuantity)
	return app, repo
}

func patchStock(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("PATCH", path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func storedQuantity(t *testing.T, repo *fakeQuantityRepo, id string) int {
	t.Helper()
	e, err := repo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, e)
	return e.Quantity
}

// quantity no numérico debe ser 400, nunca una escritura destructiva a 0.
func TestSetQuantity_ValorNoNumerico(t *testing.T) {
	app, repo := newStockApp(t)

	status, body := patchStock(t, app, "/api/product-store-sizes/row-1/quantity?quantity=abc")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "INVALID_QUERY", body["code"])
	assert.Equal(t, 7, storedQuantity(t, repo, "row-1"), "la fila no debe cambiar")
}

func TestSetQuantity_ParamAusente(t *testing.T) {
	app, repo := newStockApp(t)

	status, body := patchStock(t, app, "/api/product-store-sizes/row-1/quantity")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "MISSING_PARAM", body["code"])
	assert.Equal(t, 7, storedQuantity(t, repo, "row-1"))
}

func TestSetQuantity_Valido(t *testing.T) {
	app, repo := newStockApp(t)

	status, body := patchStock(t, app, "/api/product-store-sizes/row-1/quantity?quantity=4")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(4), body["quantity"])
	assert.Equal(t, 4, storedQuantity(t, repo, "row-1"))
}

// delta no numérico debe ser 400, no un 200 sin efecto.
func TestAdjust_ValorNoNumerico(t *testing.T) {
	app, repo := newStockApp(t)

	status, body := patchStock(t, app, "/api/product-store-sizes/row-1/adjust?delta=abc")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "INVALID_QUERY", body["code"])
	assert.Equal(t, 7, storedQuantity(t, repo, "row-1"))
}

func TestAdjust_ParamAusente(t *testing.T) {
	app, _ := newStockApp(t)

	status, body := patchStock(t, app, "/api/product-store-sizes/row-1/adjust")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "MISSING_PARAM", body["code"])
}

func TestAdjust_DeltaNegativoValido(t *testing.T) {
	app, repo := newStockApp(t)

	status, body := patchStock(t, app, "/api/product-store-sizes/row-1/adjust?delta=-3")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(4), body["quantity"])
	assert.Equal(t, 4, storedQuantity(t, repo, "row-1"))
}

// El mapeo de dominio sigue vigente: un delta que deja negativa la cantidad
// es 400, y la fila no cambia.
func TestAdjust_ResultadoNegativo(t *testing.T) {
	app, repo := newStockApp(t)

	status, body := patchStock(t, app, "/api/product-store-sizes/row-1/adjust?delta=-8")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "INVALID_INPUT", body["code"])
	assert.Equal(t, 7, storedQuantity(t, repo, "row-1"))
}
