package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecomarket/storefront-api/internal/application/dto"
	"github.com/ecomarket/storefront-api/internal/domain/entity"
)

// sessionSource es el contrato mínimo que necesitan los guards para leer el
// usuario en sesión. Lo implementa *auth.AuthUseCase; el uso de interfaz
// evita el import circular.
type sessionSource interface {
	CurrentUser(sessionID string) (entity.Session, error)
}

// RequireUser exige una sesión autenticada. Debe usarse DESPUÉS de
// SessionMiddleware (necesita LocalSessionID).
func RequireUser(src sessionSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := src.CurrentUser(GetSessionID(c))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if !session.IsAuthenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "para esta operación hay que iniciar sesión"})
		}
		return c.Next()
	}
}

// RequireOperator exige que el usuario en sesión tenga rol operator.
func RequireOperator(src sessionSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := src.CurrentUser(GetSessionID(c))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if !session.IsAuthenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "para esta operación hay que iniciar sesión"})
		}
		if !session.IsOperator() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo para el operador del punto"})
		}
		return c.Next()
	}
}
