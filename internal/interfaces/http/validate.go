package http

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nirs/shop-api/internal/application/dto"
)

var validate = validator.New()

// parseBody decodifica el cuerpo JSON en out y aplica las reglas validate de
// los tags. Si falla escribe la respuesta 400 en c y devuelve false.
func parseBody(c *fiber.Ctx, out any) bool {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return false
	}
	if err := validate.Struct(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		return false
	}
	return true
}

// requireIntQuery lee un query param entero obligatorio. Un valor ausente o
// no numérico escribe la respuesta 400 en c y devuelve false; nunca se
// degrada a 0 en silencio.
func requireIntQuery(c *fiber.Ctx, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PARAM", Message: name + " es requerido"})
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: name + " debe ser un entero"})
		return 0, false
	}
	return v, true
}
