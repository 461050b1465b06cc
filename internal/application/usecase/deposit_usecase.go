package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecomarket/storefront-api/internal/application/auth"
	"github.com/ecomarket/storefront-api/internal/application/dto"
	"github.com/ecomarket/storefront-api/internal/domain"
	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/internal/domain/repository"
	"github.com/ecomarket/storefront-api/pkg/logger"
)

// bonusPerKilo puntos acreditados por kilogramo de plástico entregado.
var bonusPerKilo = decimal.NewFromInt(10)

// DepositUseCase registra entregas de plástico y acredita los puntos por la
// misma vía de liquidación que usa el débito del checkout.
type DepositUseCase struct {
	deposits repository.DepositRepository
	auth     *auth.AuthUseCase
	log      *logger.Logger
	now      func() time.Time
}

// NewDepositUseCase construye el caso de uso.
func NewDepositUseCase(deposits repository.DepositRepository, authUC *auth.AuthUseCase, log *logger.Logger) *DepositUseCase {
	return &DepositUseCase{deposits: deposits, auth: authUC, log: log, now: time.Now}
}

// Add registra la operación: bonus = round(weight · 10) con aritmética
// decimal, alta del registro y acreditación al balance del usuario (con
// espejo en la sesión si es él quien está autenticado).
func (uc *DepositUseCase) Add(sessionID string, in dto.CreateDepositRequest) (*dto.DepositResponse, error) {
	if in.Weight <= 0 || in.PlasticType == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.auth.FindUser(sessionID, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	bonus := decimal.NewFromFloat(in.Weight).Mul(bonusPerKilo).Round(0).IntPart()
	deposit := entity.Deposit{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		UserName:    user.Name,
		PlasticType: in.PlasticType,
		Weight:      in.Weight,
		BonusAmount: bonus,
		Date:        uc.now(),
	}
	if err := uc.deposits.Append(sessionID, deposit); err != nil {
		return nil, err
	}
	if err := uc.auth.UpdateBalance(sessionID, user.ID, user.BonusBalance+bonus); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("user_id", user.ID).
		Float64("weight", in.Weight).
		Int64("bonus", bonus).
		Msg("depósito registrado")

	resp := toDepositResponse(deposit)
	resp.Message = fmt.Sprintf("Начислено %d баллов пользователю %s", bonus, user.Name)
	return &resp, nil
}

// List devuelve todas las operaciones de la sesión.
func (uc *DepositUseCase) List(sessionID string) (*dto.DepositListResponse, error) {
	deposits, err := uc.deposits.List(sessionID)
	if err != nil {
		return nil, err
	}
	out := &dto.DepositListResponse{Items: make([]dto.DepositResponse, 0, len(deposits))}
	for _, d := range deposits {
		out.Items = append(out.Items, toDepositResponse(d))
	}
	return out, nil
}

// Recent devuelve las últimas operaciones, las más nuevas primero.
func (uc *DepositUseCase) Recent(sessionID string, limit int) (*dto.DepositListResponse, error) {
	deposits, err := uc.deposits.List(sessionID)
	if err != nil {
		return nil, err
	}
	sort.Slice(deposits, func(i, j int) bool {
		return deposits[i].Date.After(deposits[j].Date)
	})
	if limit > 0 && len(deposits) > limit {
		deposits = deposits[:limit]
	}
	out := &dto.DepositListResponse{Items: make([]dto.DepositResponse, 0, len(deposits))}
	for _, d := range deposits {
		out.Items = append(out.Items, toDepositResponse(d))
	}
	return out, nil
}

func toDepositResponse(d entity.Deposit) dto.DepositResponse {
	return dto.DepositResponse{
		ID:          d.ID,
		UserID:      d.UserID,
		UserName:    d.UserName,
		PlasticType: d.PlasticType,
		Weight:      d.Weight,
		BonusAmount: d.BonusAmount,
		Date:        d.Date.Format("02.01.2006 15:04"),
	}
}
