package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomarket/storefront-api/internal/application/dto"
	"github.com/ecomarket/storefront-api/internal/domain"
	"github.com/ecomarket/storefront-api/internal/domain/entity"
)

func TestDeposit_AcreditaPuntosPorPeso(t *testing.T) {
	e := newEnv(t)

	out, err := e.deposits.Add(sid, dto.CreateDepositRequest{
		UserID:      "u-anna",
		PlasticType: "PET",
		Weight:      2.5,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(25), out.BonusAmount, "10 puntos por kilo")
	assert.Equal(t, "Анна Смирнова", out.UserName)
	assert.Contains(t, out.Message, "25")

	user, err := e.auth.FindUser(sid, "u-anna")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1025), user.BonusBalance)
}

func TestDeposit_RedondeoDelBono(t *testing.T) {
	e := newEnv(t)

	// 1.25 kg → 12.5 → 13 (redondeo al entero más cercano).
	out, err := e.deposits.Add(sid, dto.CreateDepositRequest{
		UserID:      "u-anna",
		PlasticType: "HDPE",
		Weight:      1.25,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(13), out.BonusAmount)

	// 0.04 kg → 0.4 → 0: la entrega queda registrada aunque no acredite nada.
	out, err = e.deposits.Add(sid, dto.CreateDepositRequest{
		UserID:      "u-anna",
		PlasticType: "HDPE",
		Weight:      0.04,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.BonusAmount)
}

func TestDeposit_ReflejaEnSesionDelEstudiante(t *testing.T) {
	e := newEnv(t)
	login(t, e)

	_, err := e.deposits.Add(sid, dto.CreateDepositRequest{
		UserID:      "u-anna",
		PlasticType: "PET",
		Weight:      3,
	})
	require.NoError(t, err)

	session, err := e.auth.CurrentUser(sid)
	require.NoError(t, err)
	u, ok := session.User()
	require.True(t, ok)
	assert.Equal(t, int64(1030), u.BonusBalance, "la acreditación debe verse en la sesión sin re-login")
}

func TestDeposit_UsuarioInexistente(t *testing.T) {
	e := newEnv(t)
	_, err := e.deposits.Add(sid, dto.CreateDepositRequest{
		UserID:      "no-existe",
		PlasticType: "PET",
		Weight:      1,
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeposit_EntradaInvalida(t *testing.T) {
	e := newEnv(t)

	_, err := e.deposits.Add(sid, dto.CreateDepositRequest{UserID: "u-anna", PlasticType: "PET", Weight: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.deposits.Add(sid, dto.CreateDepositRequest{UserID: "u-anna", PlasticType: "", Weight: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeposit_Recent_MasNuevosPrimero(t *testing.T) {
	e := newEnv(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"d1", "d2", "d3"} {
		require.NoError(t, e.depositRepo.Append(sid, entity.Deposit{
			ID:          id,
			UserID:      "u-anna",
			UserName:    "Анна Смирнова",
			PlasticType: "PET",
			Weight:      1,
			BonusAmount: 10,
			Date:        base.Add(time.Duration(i) * time.Hour),
		}))
	}

	out, err := e.deposits.Recent(sid, 2)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "d3", out.Items[0].ID)
	assert.Equal(t, "d2", out.Items[1].ID)
}
