package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nirs/shop-api/internal/application/usecase"
)

// StatsHandler expone las lecturas agregadas de ventas.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// TopSelling godoc
// @Summary      Productos con más unidades vendidas
// @Tags         stats
// @Produce      json
// @Param        limit  query  int  false  "Máximo de filas"  default(10)
// @Success      200  {array}  dto.PopularProductResponse
// @Router       /api/products/top-selling [get]
func (h *StatsHandler) TopSelling(c *fiber.Ctx) error {
	out, err := h.uc.TopSelling(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopIncome godoc
// @Summary      Productos con mayores ingresos acumulados
// @Tags         stats
// @Produce      json
// @Param        limit  query  int  false  "Máximo de filas"  default(10)
// @Success      200  {array}  dto.TopIncomeProductResponse
// @Router       /api/products/top-income [get]
func (h *StatsHandler) TopIncome(c *fiber.Ctx) error {
	out, err := h.uc.TopIncome(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
