package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecomarket/storefront-api/internal/domain/checkout"
	"github.com/ecomarket/storefront-api/internal/domain/entity"
)

func TestSubtotal_PliegueSobreLineas(t *testing.T) {
	items := []entity.CartLine{
		{ProductID: "a", Price: 100, Quantity: 2},
		{ProductID: "b", Price: 50, Quantity: 1},
	}
	assert.Equal(t, int64(250), checkout.Subtotal(items))
	assert.Equal(t, int64(3), checkout.TotalItems(items))
}

func TestSubtotal_CarritoVacio(t *testing.T) {
	assert.Equal(t, int64(0), checkout.Subtotal(nil))
}

func TestMaxRedeemable_LimitadoPorRegla90(t *testing.T) {
	// balance sobrado: manda el tope del 90% del subtotal
	assert.Equal(t, int64(900), checkout.MaxRedeemable(1000, 2000))
}

func TestMaxRedeemable_LimitadoPorBalance(t *testing.T) {
	// balance corto: manda el balance, no la regla del 90%
	assert.Equal(t, int64(300), checkout.MaxRedeemable(1000, 300))
}

func TestMaxRedeemable_FloorExacto(t *testing.T) {
	// 0.9 · 255 = 229.5 → floor 229; el cálculo decimal no debe arrastrar
	// error binario de float
	assert.Equal(t, int64(229), checkout.MaxRedeemable(255, 10000))
	assert.Equal(t, int64(0), checkout.MaxRedeemable(0, 10000))
}

func TestClampBonus_CorrigeEnSilencio(t *testing.T) {
	cases := []struct {
		name      string
		requested int64
		max       int64
		want      int64
	}{
		{"dentro del rango", 100, 225, 100},
		{"por encima del máximo", 900, 225, 225},
		{"negativo", -5, 225, 0},
		{"exacto en el máximo", 225, 225, 225},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, checkout.ClampBonus(tc.requested, tc.max))
		})
	}
}

func TestFinalPrice_NuncaNegativo(t *testing.T) {
	assert.Equal(t, int64(100), checkout.FinalPrice(1000, 900))
	assert.Equal(t, int64(0), checkout.FinalPrice(500, 900), "el precio final no puede ser negativo")
	assert.Equal(t, int64(25), checkout.FinalPrice(250, 225))
}
