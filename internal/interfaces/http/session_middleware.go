package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ecomarket/storefront-api/internal/application/dto"
	"github.com/ecomarket/storefront-api/pkg/token"
)

// Locals key para el id de sesión en Fiber.
const LocalSessionID = "session_id"

// HeaderSessionToken cabecera con el token que el cliente debe guardar en su
// sessionStorage y reenviar como Bearer.
const HeaderSessionToken = "X-Session-Token"

// SessionConfig parámetros del middleware de sesión.
type SessionConfig struct {
	Secret     string
	Issuer     string
	TTLMinutes int
}

// SessionMiddleware resuelve la sesión de pestaña. Con un Bearer válido
// reutiliza esa sesión; sin token o con token inválido/expirado crea una
// sesión nueva y devuelve su token en X-Session-Token. Nunca rechaza la
// petición: una pestaña recién abierta simplemente empieza de cero.
func SessionMiddleware(cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := ""
		if authHeader := c.Get("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				if sid, err := token.Parse(cfg.Secret, strings.TrimSpace(parts[1])); err == nil {
					sessionID = sid
				}
			}
		}
		if sessionID == "" {
			sessionID = uuid.New().String()
			tok, err := token.Generate(cfg.Secret, sessionID, cfg.Issuer, cfg.TTLMinutes)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "crear sesión"})
			}
			c.Set(HeaderSessionToken, tok)
		}
		c.Locals(LocalSessionID, sessionID)
		return c.Next()
	}
}

// GetSessionID devuelve el id de sesión del contexto (después del middleware).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
