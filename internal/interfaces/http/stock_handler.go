package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nirs/shop-api/internal/application/dto"
	"github.com/nirs/shop-api/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP para las filas de stock
// (producto × tienda × talla).
type StockHandler struct {
	uc *stock.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Create godoc
// @Summary      Crear fila de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockEntryRequest  true  "Datos de la fila"
// @Success      201   {object}  dto.StockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/product-store-sizes [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockEntryRequest
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
// @Summary      Obtener fila de stock por ID
// @Tags         stock
// @Produce      json
// @Param        id  path  string  true  "ID de la fila"
// @Success      200  {object}  dto.StockEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-store-sizes/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar filas de stock
// @Tags         stock
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.StockEntryResponse
// @Router       /api/product-store-sizes [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Filas de stock de un producto (opcionalmente por tienda)
// @Tags         stock
// @Produce      json
// @Param        productId  query  string  true   "ID del producto"
// @Param        storeId    query  string  false  "ID de la tienda"
// @Success      200  {array}  dto.StockEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-store-sizes/by-product [get]
func (h *StockHandler) ListByProduct(c *fiber.Ctx) error {
	productID := c.Query("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PARAM", Message: "productId es requerido"})
	}
	if storeID := c.Query("storeId"); storeID != "" {
		out, err := h.uc.ListByProductAndStore(productID, storeID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.ListByProduct(productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar fila de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la fila"
// @Param        body  body  dto.UpdateStockEntryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.StockEntryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/product-store-sizes/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockEntryRequest
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
// @Summary      Eliminar fila de stock
// @Tags         stock
// @Security     Bearer
// @Param        id  path  string  true  "ID de la fila"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-store-sizes/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Adjust godoc
// @Summary      Ajustar cantidad por delta (positivo o negativo)
// @Description  Falla con 400 si el resultado quedaría negativo; la fila no cambia.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true  "ID de la fila"
// @Param        delta  query  int     true  "Delta a aplicar"
// @Success      200  {object}  dto.StockEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-store-sizes/{id}/adjust [patch]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	delta, ok := requireIntQuery(c, "delta")
	if !ok {
		return nil
	}
	out, err := h.uc.AdjustQuantity(c.UserContext(), c.Params("id"), delta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Fijar la cantidad absoluta de una fila
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id        path   string  true  "ID de la fila"
// @Param        quantity  query  int     true  "Cantidad (no negativa)"
// @Success      200  {object}  dto.StockEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-store-sizes/{id}/quantity [patch]
func (h *StockHandler) SetQuantity(c *fiber.Ctx) error {
	quantity, ok := requireIntQuery(c, "quantity")
	if !ok {
		return nil
	}
	out, err := h.uc.SetQuantity(c.UserContext(), c.Params("id"), quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CheckAvailability godoc
// @Summary      Disponibilidad de una talla de un producto en una tienda
// @Tags         stock
// @Produce      json
// @Param        productId  query  string  true  "ID del producto"
// @Param        storeId    query  string  true  "ID de la tienda"
// @Param        size       query  string  true  "Talla"
// @Success      200  {boolean}  bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-store-sizes/check-availability [get]
func (h *StockHandler) CheckAvailability(c *fiber.Ctx) error {
	productID := c.Query("productId")
	storeID := c.Query("storeId")
	size := c.Query("size")
	if productID == "" || storeID == "" || size == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PARAM", Message: "productId, storeId y size son requeridos"})
	}
	ok, err := h.uc.IsAvailable(productID, storeID, size)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ok)
}

// AllSizes godoc
// @Summary      Todas las tallas conocidas por el sistema (orden lexicográfico)
// @Tags         stock
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/product-store-sizes/sizes/all [get]
func (h *StockHandler) AllSizes(c *fiber.Ctx) error {
	out, err := h.uc.AllSizes()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
