package postgres

import (
	"fmt"
	"strings"

	"github.com/nirs/shop-api/internal/domain/catalog"
)

// filterPredicate una condición SQL parametrizada sobre el alias p (products).
// Los placeholders se escriben como %s y bind los sustituye por $n al componer.
type filterPredicate struct {
	expr string
	args []any
}

// productFilterPredicates traduce el filtro a la lista de predicados
// presentes; se combinan con AND. Un campo ausente no aporta predicado.
// InStock en false explícito tampoco restringe (solo true filtra).
func productFilterPredicates(f catalog.Filter) []filterPredicate {
	var preds []filterPredicate
	add := func(expr string, args ...any) {
		preds = append(preds, filterPredicate{expr: expr, args: args})
	}

	if f.CategoryID != nil {
		add("p.category_id = %s", *f.CategoryID)
	}
	if f.MinPrice != nil {
		add("p.price >= %s", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("p.price <= %s", *f.MaxPrice)
	}
	if f.Gender != nil {
		add("p.gender = %s", *f.Gender)
	}
	if f.MinRating != nil {
		add("p.rating >= %s", *f.MinRating)
	}
	if f.Search != nil {
		pattern := "%" + escapeLike(*f.Search) + "%"
		add("(p.name ILIKE %s OR p.article ILIKE %s)", pattern, pattern)
	}
	if len(f.SizeValues) > 0 {
		// EXISTS evita duplicar productos con varias filas de stock coincidentes.
		add("EXISTS (SELECT 1 FROM stock_entries s WHERE s.product_id = p.id AND s.size_value = ANY(%s))", f.SizeValues)
	}
	if f.InStock != nil && *f.InStock {
		if f.StoreID != nil {
			add("EXISTS (SELECT 1 FROM stock_entries s WHERE s.product_id = p.id AND s.store_id = %s AND s.quantity > 0)", *f.StoreID)
		} else {
			add("EXISTS (SELECT 1 FROM stock_entries s WHERE s.product_id = p.id AND s.quantity > 0)")
		}
	}
	return preds
}

// buildFilterWhere compone la cláusula WHERE numerando los placeholders en
// orden ($1, $2, ...). Sin predicados devuelve cadena vacía y args nil.
func buildFilterWhere(preds []filterPredicate) (string, []any) {
	if len(preds) == 0 {
		return "", nil
	}
	var args []any
	clauses := make([]string, 0, len(preds))
	for _, p := range preds {
		placeholders := make([]any, len(p.args))
		for i, a := range p.args {
			args = append(args, a)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf(p.expr, placeholders...))
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// escapeLike escapa los comodines de LIKE para que la búsqueda sea literal.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
