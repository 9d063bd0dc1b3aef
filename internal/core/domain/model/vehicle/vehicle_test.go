package vehicle_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plate(t *testing.T) kernel.LicensePlate {
	t.Helper()
	p, err := kernel.NewLicensePlate("ABC1D23")
	require.NoError(t, err)
	return p
}

func TestNewVehicle(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("should create active vehicle", func(t *testing.T) {
		v, err := vehicle.NewVehicle(customerID, plate(t), " Fiat ", "Uno", 2015, "Prata", "9bwzzz377vt004251")

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.Equal(t, "Fiat", v.Brand())
		assert.Equal(t, "9BWZZZ377VT004251", v.ChassisNumber())
		assert.True(t, v.IsActive())
		assert.True(t, v.BelongsTo(customerID))
		assert.False(t, v.BelongsTo(kernel.NewUUID()))
	})

	t.Run("should accept next model year", func(t *testing.T) {
		_, err := vehicle.NewVehicle(customerID, plate(t), "VW", "Gol", time.Now().Year()+1, "", "")

		require.NoError(t, err)
	})

	t.Run("should reject years out of range", func(t *testing.T) {
		for _, year := range []int{1899, time.Now().Year() + 2} {
			_, err := vehicle.NewVehicle(customerID, plate(t), "VW", "Gol", year, "", "")
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.UUID{}, kernel.LicensePlate{}, "V", "G", 1800, "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, kernel.ErrLicensePlateIsNotConstructed)
		assert.Contains(t, err.Error(), "brand")
		assert.Contains(t, err.Error(), "model")
		assert.Contains(t, err.Error(), "year")
	})
}

func TestVehicle_UpdateInfo(t *testing.T) {
	v, err := vehicle.NewVehicle(kernel.NewUUID(), plate(t), "Fiat", "Uno", 2015, "Prata", "")
	require.NoError(t, err)

	t.Run("should leave vehicle untouched on invalid year", func(t *testing.T) {
		err := v.UpdateInfo("Fiat", "Palio", 1500, "Azul")

		require.Error(t, err)
		assert.Equal(t, "Uno", v.Model())
		assert.Equal(t, "Prata", v.Color())
	})

	t.Run("should apply valid changes", func(t *testing.T) {
		err := v.UpdateInfo("Fiat", "Palio", 2018, "Azul")

		require.NoError(t, err)
		assert.Equal(t, "Palio", v.Model())
		assert.Equal(t, 2018, v.Year())
	})
}

func TestVehicle_Snapshot(t *testing.T) {
	v, err := vehicle.NewVehicle(kernel.NewUUID(), plate(t), "Fiat", "Uno", 2015, "", "")
	require.NoError(t, err)

	s := v.Snapshot()

	assert.Equal(t, "ABC1D23", s.LicensePlate)
	assert.Equal(t, "ABC-1D23", s.LicensePlateFormatted)
	assert.Equal(t, v.CustomerID().String(), s.CustomerID)
}
