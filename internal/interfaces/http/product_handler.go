package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/nirs/shop-api/internal/application/catalog"
	"github.com/nirs/shop-api/internal/application/dto"
	"github.com/nirs/shop-api/internal/application/stock"
	"github.com/nirs/shop-api/internal/application/usecase"
	"github.com/nirs/shop-api/internal/domain/catalog"
)

// ProductHandler maneja las peticiones HTTP para Product, incluida la
// búsqueda filtrada y las lecturas de stock con alcance de producto.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	search  *appcatalog.SearchUseCase
	stockUC *stock.StockUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, search *appcatalog.SearchUseCase, stockUC *stock.StockUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, search: search, stockUC: stockUC}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar productos con filtros opcionales
// @Description  Los parámetros ausentes no restringen; los presentes se combinan con AND.
// @Tags         products
// @Produce      json
// @Param        category_id  query  string   false  "Categoría exacta"
// @Param        min_price    query  int      false  "Precio mínimo (inclusive)"
// @Param        max_price    query  int      false  "Precio máximo (inclusive)"
// @Param        gender       query  string   false  "Género exacto"
// @Param        sizes        query  string   false  "Tallas separadas por coma"
// @Param        search       query  string   false  "Subcadena sobre nombre o artículo"
// @Param        in_stock     query  bool     false  "Solo con existencias"
// @Param        store_id     query  string   false  "Tienda (con in_stock)"
// @Param        min_rating   query  number   false  "Rating mínimo"
// @Param        page         query  int      false  "Página (base cero)"  default(0)
// @Param        page_size    query  int      false  "Tamaño de página"     default(20)
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	page := catalog.PageRequest{
		Page:     c.QueryInt("page", 0),
		PageSize: c.QueryInt("page_size", 0),
	}
	out, err := h.search.FindByFilters(filter, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto (con cascada de imágenes)
// @Description  Falla con 409 si el producto aún tiene filas de stock.
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Sizes godoc
// @Summary      Tallas del producto (orden lexicográfico, incluye agotadas)
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/sizes [get]
func (h *ProductHandler) Sizes(c *fiber.Ctx) error {
	out, err := h.stockUC.AvailableSizes(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TotalQuantity godoc
// @Summary      Cantidad total del producto en todas las tiendas
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {integer}  int
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/total-quantity [get]
func (h *ProductHandler) TotalQuantity(c *fiber.Ctx) error {
	total, err := h.stockUC.TotalQuantity(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(total)
}

// QuantityInStore godoc
// @Summary      Cantidad del producto en una tienda
// @Tags         products
// @Produce      json
// @Param        id       path  string  true  "ID del producto"
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {integer}  int
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/store/{storeId}/quantity [get]
func (h *ProductHandler) QuantityInStore(c *fiber.Ctx) error {
	total, err := h.stockUC.TotalQuantityInStore(c.Params("id"), c.Params("storeId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(total)
}

// InStock godoc
// @Summary      Indica si el producto tiene existencias en la tienda
// @Tags         products
// @Produce      json
// @Param        id       path  string  true  "ID del producto"
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {boolean}  bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/store/{storeId}/in-stock [get]
func (h *ProductHandler) InStock(c *fiber.Ctx) error {
	ok, err := h.stockUC.IsProductInStock(c.Params("id"), c.Params("storeId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ok)
}

// Stores godoc
// @Summary      Tiendas con existencias del producto
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.StoreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stores [get]
func (h *ProductHandler) Stores(c *fiber.Ctx) error {
	out, err := h.stockUC.StoresWithProduct(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseProductFilter arma el filtro desde los query params presentes.
// Un valor numérico o booleano mal formado es un error de la petición.
func parseProductFilter(c *fiber.Ctx) (catalog.Filter, error) {
	var f catalog.Filter

	if v := c.Query("category_id"); v != "" {
		f.CategoryID = &v
	}
	if v := c.Query("gender"); v != "" {
		f.Gender = &v
	}
	if v := c.Query("search"); v != "" {
		f.Search = &v
	}
	if v := c.Query("store_id"); v != "" {
		f.StoreID = &v
	}
	if v := c.Query("sizes"); v != "" {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				f.SizeValues = append(f.SizeValues, s)
			}
		}
	}
	if v := c.Query("min_price"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, err
		}
		f.MinPrice = &n
	}
	if v := c.Query("max_price"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, err
		}
		f.MaxPrice = &n
	}
	if v := c.Query("min_rating"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, err
		}
		f.MinRating = &n
	}
	if v := c.Query("in_stock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, err
		}
		f.InStock = &b
	}
	return f, nil
}
