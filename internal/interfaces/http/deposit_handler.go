package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecomarket/storefront-api/internal/application/auth"
	"github.com/ecomarket/storefront-api/internal/application/dto"
	"github.com/ecomarket/storefront-api/internal/application/usecase"
	"github.com/ecomarket/storefront-api/internal/domain"
)

// DepositHandler panel del operador: registro de entregas de plástico y
// listado de estudiantes con su balance.
type DepositHandler struct {
	uc   *usecase.DepositUseCase
	auth *auth.AuthUseCase
}

// NewDepositHandler construye el handler.
func NewDepositHandler(uc *usecase.DepositUseCase, authUC *auth.AuthUseCase) *DepositHandler {
	return &DepositHandler{uc: uc, auth: authUC}
}

// Create godoc
// @Summary      Registrar entrega de plástico (acredita puntos)
// @Tags         operator
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDepositRequest  true  "Datos de la entrega"
// @Success      201   {object}  dto.DepositResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/operator/deposits [post]
func (h *DepositHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDepositRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID == "" || in.PlasticType == "" || in.Weight <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id, plastic_type y weight > 0 son requeridos"})
	}
	out, err := h.uc.Add(GetSessionID(c), in)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar entregas registradas
// @Tags         operator
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Solo las N más recientes"
// @Success      200    {object}  dto.DepositListResponse
// @Router       /api/operator/deposits [get]
func (h *DepositHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	var (
		out *dto.DepositListResponse
		err error
	)
	if limit > 0 {
		out, err = h.uc.Recent(GetSessionID(c), limit)
	} else {
		out, err = h.uc.List(GetSessionID(c))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Students godoc
// @Summary      Listar estudiantes con su balance de puntos
// @Tags         operator
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserSummaryResponse
// @Router       /api/operator/students [get]
func (h *DepositHandler) Students(c *fiber.Ctx) error {
	out, err := h.auth.ListStudents(GetSessionID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
