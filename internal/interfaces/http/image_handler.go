package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nirs/shop-api/internal/application/dto"
	"github.com/nirs/shop-api/internal/application/media"
)

// ImageHandler maneja la galería de imágenes de un producto
// (rutas anidadas bajo /api/products/{productId}/images).
type ImageHandler struct {
	uc *media.ImageUseCase
}

// NewImageHandler construye el handler.
func NewImageHandler(uc *media.ImageUseCase) *ImageHandler {
	return &ImageHandler{uc: uc}
}

// List godoc
// @Summary      Listar imágenes del producto en orden de galería
// @Tags         images
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.ImageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{productId}/images [get]
func (h *ImageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una imagen
// @Tags         images
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        imageId    path  string  true  "ID de la imagen"
// @Success      200  {object}  dto.ImageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{productId}/images/{imageId} [get]
func (h *ImageHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("imageId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Añadir imagen al producto
// @Description  La primera imagen del producto queda primaria aunque no se pida.
// @Tags         images
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body  body  dto.CreateImageRequest  true  "Datos de la imagen"
// @Success      201   {object}  dto.ImageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{productId}/images [post]
func (h *ImageHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateImageRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Add(c.UserContext(), c.Params("productId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar imagen
// @Description  is_primary solo se acata en true; en false se ignora (usar set-primary en otra imagen).
// @Tags         images
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        imageId    path  string  true  "ID de la imagen"
// @Param        body  body  dto.UpdateImageRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ImageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{productId}/images/{imageId} [put]
func (h *ImageHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateImageRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("productId"), c.Params("imageId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar imagen
// @Description  Si era la primaria, la sobreviviente con menor display_order la releva.
// @Tags         images
// @Security     Bearer
// @Param        productId  path  string  true  "ID del producto"
// @Param        imageId    path  string  true  "ID de la imagen"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{productId}/images/{imageId} [delete]
func (h *ImageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("productId"), c.Params("imageId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetPrimary godoc
// @Summary      Marcar imagen como primaria
// @Tags         images
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        imageId    path  string  true  "ID de la imagen"
// @Success      200  {object}  dto.ImageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{productId}/images/{imageId}/set-primary [patch]
func (h *ImageHandler) SetPrimary(c *fiber.Ctx) error {
	out, err := h.uc.SetPrimary(c.UserContext(), c.Params("productId"), c.Params("imageId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reorder godoc
// @Summary      Reordenar la galería del producto
// @Description  Los IDs listados toman display_order 0..k-1; los no listados se renumeran a continuación.
// @Tags         images
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body  body  dto.ReorderImagesRequest  true  "IDs en el orden deseado"
// @Success      200  {array}  dto.ImageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{productId}/images/reorder [put]
func (h *ImageHandler) Reorder(c *fiber.Ctx) error {
	var in dto.ReorderImagesRequest
	if !parseBody(c, &in) {
		return nil
	}
	productID := c.Params("productId")
	if err := h.uc.Reorder(c.UserContext(), productID, in.ImageIDs); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListByProduct(productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
