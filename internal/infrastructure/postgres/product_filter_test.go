package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirs/shop-api/internal/domain/catalog"
)

func strPtr(s string) *string { return &s }
func int64Ptr(n int64) *int64 { return &n }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool { return &b }

// Filtro vacío: sin WHERE y sin argumentos (listado completo).
func TestBuildFilterWhere_FiltroVacio(t *testing.T) {
	where, args := buildFilterWhere(productFilterPredicates(catalog.Filter{}))

	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestBuildFilterWhere_PredicadoUnico(t *testing.T) {
	f := catalog.Filter{CategoryID: strPtr("cat-1")}

	where, args := buildFilterWhere(productFilterPredicates(f))

	assert.Equal(t, " WHERE p.category_id = $1", where)
	assert.Equal(t, []any{"cat-1"}, args)
}

// Los predicados presentes se combinan con AND y los placeholders se numeran
// en orden de aparición.
func TestBuildFilterWhere_ConjuncionYNumeracion(t *testing.T) {
	f := catalog.Filter{
		CategoryID: strPtr("cat-1"),
		MinPrice:   int64Ptr(1000),
		MaxPrice:   int64Ptr(5000),
		Gender:     strPtr("female"),
		MinRating:  floatPtr(3.5),
	}

	where, args := buildFilterWhere(productFilterPredicates(f))

	assert.Equal(t,
		" WHERE p.category_id = $1 AND p.price >= $2 AND p.price <= $3"+
			" AND p.gender = $4 AND p.rating >= $5",
		where)
	assert.Equal(t, []any{"cat-1", int64(1000), int64(5000), "female", 3.5}, args)
}

// Un predicado con varios argumentos consume varios $n consecutivos y la
// numeración sigue correcta para el siguiente predicado.
func TestBuildFilterWhere_PredicadoMultiArgumento(t *testing.T) {
	f := catalog.Filter{
		Search:    strPtr("bota"),
		MinRating: floatPtr(4.0),
	}

	where, args := buildFilterWhere(productFilterPredicates(f))

	assert.Equal(t,
		" WHERE (p.name ILIKE $1 OR p.article ILIKE $2) AND p.rating >= $3",
		where)
	assert.Equal(t, []any{"%bota%", "%bota%", 4.0}, args)
}

// Mismo filtro, misma salida: el orden de composición es determinista.
func TestBuildFilterWhere_Determinista(t *testing.T) {
	f := catalog.Filter{
		Gender:   strPtr("male"),
		MinPrice: int64Ptr(500),
		InStock:  boolPtr(true),
	}

	where1, args1 := buildFilterWhere(productFilterPredicates(f))
	where2, args2 := buildFilterWhere(productFilterPredicates(f))

	assert.Equal(t, where1, where2)
	assert.Equal(t, args1, args2)
}

func TestProductFilterPredicates_TallasUsaExists(t *testing.T) {
	f := catalog.Filter{SizeValues: []string{"40", "41"}}

	where, args := buildFilterWhere(productFilterPredicates(f))

	assert.Equal(t,
		" WHERE EXISTS (SELECT 1 FROM stock_entries s WHERE s.product_id = p.id AND s.size_value = ANY($1))",
		where)
	require.Len(t, args, 1)
	assert.Equal(t, []string{"40", "41"}, args[0])
}

// InStock en false explícito no restringe: equivale a ausente.
func TestProductFilterPredicates_InStockFalseEsNeutro(t *testing.T) {
	f := catalog.Filter{InStock: boolPtr(false), StoreID: strPtr("store-1")}

	where, args := buildFilterWhere(productFilterPredicates(f))

	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestProductFilterPredicates_InStockGlobal(t *testing.T) {
	f := catalog.Filter{InStock: boolPtr(true)}

	where, args := buildFilterWhere(productFilterPredicates(f))

	assert.Equal(t,
		" WHERE EXISTS (SELECT 1 FROM stock_entries s WHERE s.product_id = p.id AND s.quantity > 0)",
		where)
	assert.Nil(t, args)
}

func TestProductFilterPredicates_InStockPorTienda(t *testing.T) {
	f := catalog.Filter{InStock: boolPtr(true), StoreID: strPtr("store-1")}

	where, args := buildFilterWhere(productFilterPredicates(f))

	assert.Equal(t,
		" WHERE EXISTS (SELECT 1 FROM stock_entries s WHERE s.product_id = p.id AND s.store_id = $1 AND s.quantity > 0)",
		where)
	assert.Equal(t, []any{"store-1"}, args)
}

// StoreID sin InStock no aporta predicado propio.
func TestProductFilterPredicates_StoreIDSoloConInStock(t *testing.T) {
	f := catalog.Filter{StoreID: strPtr("store-1")}

	where, args := buildFilterWhere(productFilterPredicates(f))

	assert.Empty(t, where)
	assert.Nil(t, args)
}

// La búsqueda por substring escapa los comodines de LIKE.
func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `bota`, escapeLike("bota"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c\\d`, escapeLike(`c\d`))
}

func TestProductFilterPredicates_SearchEscapaComodines(t *testing.T) {
	f := catalog.Filter{Search: strPtr("50%_off")}

	_, args := buildFilterWhere(productFilterPredicates(f))

	require.Len(t, args, 2)
	assert.Equal(t, `%50\%\_off%`, args[0])
	assert.Equal(t, args[0], args[1])
}
