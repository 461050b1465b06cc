package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ecomarket/storefront-api/internal/application/auth"
	"github.com/ecomarket/storefront-api/internal/application/dto"
	"github.com/ecomarket/storefront-api/internal/application/ports"
	"github.com/ecomarket/storefront-api/internal/domain"
	"github.com/ecomarket/storefront-api/internal/domain/checkout"
	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/internal/domain/repository"
	"github.com/ecomarket/storefront-api/pkg/logger"
	"github.com/ecomarket/storefront-api/pkg/money"
)

// orderNumberPrefix prefijo externo fijo del número de pedido.
const orderNumberPrefix = "ECO-"

// OrderUseCase arma el pedido: snapshot del carrito, canje de puntos con su
// tope, alta en el historial, débito del balance por la vía de liquidación
// y vaciado incondicional del carrito.
type OrderUseCase struct {
	orders   repository.OrderRepository
	carts    repository.CartRepository
	catalog  repository.CatalogRepository
	profiles repository.ProfileRepository
	auth     *auth.AuthUseCase
	receipts ports.ReceiptGenerator
	log      *logger.Logger
	now      func() time.Time

	// Secuencia del sufijo del número de pedido. Se siembra con el reloj en
	// milisegundos y avanza monótona: conserva el formato ECO-XXXXXXXX del
	// esquema original pero sin su riesgo de colisión dentro del mismo ms.
	seq atomic.Int64
}

// NewOrderUseCase construye el caso de uso del checkout.
func NewOrderUseCase(
	orders repository.OrderRepository,
	carts repository.CartRepository,
	catalog repository.CatalogRepository,
	profiles repository.ProfileRepository,
	authUC *auth.AuthUseCase,
	receipts ports.ReceiptGenerator,
	log *logger.Logger,
) *OrderUseCase {
	uc := &OrderUseCase{
		orders:   orders,
		carts:    carts,
		catalog:  catalog,
		profiles: profiles,
		auth:     authUC,
		receipts: receipts,
		log:      log,
		now:      time.Now,
	}
	uc.seq.Store(time.Now().UnixMilli())
	return uc
}

// Quote calcula el resumen del checkout: subtotal, tope de canje según el
// balance del usuario en sesión (0 si es anónima) y el precio final con los
// puntos pedidos ya ajustados al rango válido.
func (uc *OrderUseCase) Quote(sessionID string, requested int64) (*dto.QuoteResponse, error) {
	items, err := uc.carts.Load(sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	subtotal := checkout.Subtotal(items)

	var balance int64
	session, err := uc.auth.CurrentUser(sessionID)
	if err != nil {
		return nil, err
	}
	if u, ok := session.User(); ok {
		balance = u.BonusBalance
	}
	maxBonus := checkout.MaxRedeemable(subtotal, balance)
	used := checkout.ClampBonus(requested, maxBonus)
	final := checkout.FinalPrice(subtotal, used)

	return &dto.QuoteResponse{
		Subtotal:          subtotal,
		SubtotalDisplay:   money.Format(subtotal),
		MaxBonus:          maxBonus,
		BonusUsed:         used,
		FinalPrice:        final,
		FinalPriceDisplay: money.Format(final),
	}, nil
}

// Checkout crea el pedido. Exige carrito no vacío y sesión autenticada;
// valida los campos del formulario antes de mutar nada. Tras crear el
// pedido debita los puntos usados por la vía de liquidación del directorio
// de usuarios, vacía el carrito y recuerda el teléfono para el siguiente
// pedido.
func (uc *OrderUseCase) Checkout(sessionID string, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	items, err := uc.carts.Load(sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	session, err := uc.auth.CurrentUser(sessionID)
	if err != nil {
		return nil, err
	}
	user, ok := session.User()
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validateCheckout(in); err != nil {
		return nil, err
	}
	if uc.catalog.FindPickupPoint(in.PickupPoint) == nil {
		return nil, fmt.Errorf("%w: punto de entrega desconocido", domain.ErrInvalidInput)
	}

	subtotal := checkout.Subtotal(items)
	maxBonus := checkout.MaxRedeemable(subtotal, user.BonusBalance)
	bonusUsed := checkout.ClampBonus(in.BonusUsed, maxBonus)
	finalPrice := checkout.FinalPrice(subtotal, bonusUsed)

	now := uc.now()
	order := entity.Order{
		ID:            uuid.New().String(),
		OrderNumber:   uc.nextOrderNumber(),
		UserID:        user.ID,
		UserName:      in.FullName,
		Phone:         in.Phone,
		Email:         in.Email,
		PickupPoint:   in.PickupPoint,
		PaymentMethod: in.PaymentMethod,
		Comment:       in.Comment,
		BonusUsed:     bonusUsed,
		Items:         append([]entity.CartLine(nil), items...),
		Subtotal:      subtotal,
		FinalPrice:    finalPrice,
		Status:        entity.StatusPending,
		CreatedAt:     now,
	}
	if err := uc.orders.Append(sessionID, order); err != nil {
		return nil, err
	}
	if bonusUsed > 0 {
		// El clamp garantiza bonusUsed <= balance, así que el débito nunca
		// deja el balance negativo.
		if err := uc.auth.UpdateBalance(sessionID, user.ID, user.BonusBalance-bonusUsed); err != nil {
			return nil, err
		}
	}
	if err := uc.carts.Clear(sessionID); err != nil {
		return nil, err
	}
	if err := uc.profiles.SavePhone(sessionID, in.Phone); err != nil {
		uc.log.Warn().Err(err).Msg("recordar teléfono del pedido")
	}

	uc.log.Info().
		Str("order_number", order.OrderNumber).
		Int64("subtotal", subtotal).
		Int64("bonus_used", bonusUsed).
		Int64("final_price", finalPrice).
		Msg("pedido creado")
	return uc.toOrderResponse(order), nil
}

// List devuelve el historial de pedidos de la sesión.
func (uc *OrderUseCase) List(sessionID string) (*dto.OrderListResponse, error) {
	orders, err := uc.orders.List(sessionID)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{Items: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		out.Items = append(out.Items, *uc.toOrderResponse(o))
	}
	return out, nil
}

// Receipt genera el comprobante PDF del pedido. Devuelve domain.ErrNotFound
// si el pedido no está en el historial de la sesión.
func (uc *OrderUseCase) Receipt(ctx context.Context, sessionID, orderID string) (pdf []byte, filename string, err error) {
	orders, err := uc.orders.List(sessionID)
	if err != nil {
		return nil, "", err
	}
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		point := uc.catalog.FindPickupPoint(orders[i].PickupPoint)
		pdf, err := uc.receipts.GenerateReceipt(ctx, &orders[i], point)
		if err != nil {
			return nil, "", fmt.Errorf("generar comprobante: %w", err)
		}
		return pdf, orders[i].OrderNumber + ".pdf", nil
	}
	return nil, "", domain.ErrNotFound
}

func (uc *OrderUseCase) nextOrderNumber() string {
	n := uc.seq.Add(1)
	return fmt.Sprintf("%s%08d", orderNumberPrefix, n%100000000)
}

func validateCheckout(in dto.CheckoutRequest) error {
	if !in.AgreeTerms {
		return domain.ErrTermsNotAccepted
	}
	var missing []string
	if strings.TrimSpace(in.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(in.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(in.PickupPoint) == "" {
		missing = append(missing, "pickup_point")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: faltan campos: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return fmt.Errorf("%w: método de pago desconocido", domain.ErrInvalidInput)
	}
	return nil
}

func (uc *OrderUseCase) toOrderResponse(o entity.Order) *dto.OrderResponse {
	pointName := o.PickupPoint
	if p := uc.catalog.FindPickupPoint(o.PickupPoint); p != nil {
		pointName = p.FullName()
	}
	items := make([]dto.CartLineResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, toCartLineResponse(it))
	}
	return &dto.OrderResponse{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		UserName:          o.UserName,
		Phone:             o.Phone,
		Email:             o.Email,
		PickupPoint:       o.PickupPoint,
		PickupPointName:   pointName,
		PaymentMethod:     o.PaymentMethod,
		Comment:           o.Comment,
		BonusUsed:         o.BonusUsed,
		Items:             items,
		Subtotal:          o.Subtotal,
		FinalPrice:        o.FinalPrice,
		FinalPriceDisplay: money.Format(o.FinalPrice),
		Status:            o.Status,
		CreatedAt:         o.CreatedAt.Format("02.01.2006 15:04"),
	}
}
