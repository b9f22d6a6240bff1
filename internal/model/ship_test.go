package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipRejectsNonPositiveLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		_, err := NewShip(length)
		assert.ErrorIs(t, err, ErrInvalidLength)
	}
}

func TestShipSinksAfterLengthHits(t *testing.T) {
	for n := 1; n <= 6; n++ {
		ship, err := NewShip(n)
		require.NoError(t, err)

		for i := 0; i < n; i++ {
			assert.False(t, ship.IsSunk(), "length %d sunk after %d hits", n, i)
			assert.True(t, ship.Hit())
		}
		assert.True(t, ship.IsSunk())

		// Further hits do no damage
		assert.False(t, ship.Hit())
		assert.Equal(t, n, ship.HitCounter)
	}
}
