package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPrice(t *testing.T) {
	require.Equal(t, "$12.000", Price(12000))
	require.Equal(t, "$18.500", Price(18499.6))
	require.Equal(t, "$1.250.000", Price(1250000))
	require.Equal(t, "$0", Price(0))
	require.Equal(t, "$0", Price(math.NaN()))
	require.Equal(t, "-$15.000", Price(-15000))
}

func TestDate(t *testing.T) {
	require.Equal(t, "15 de diciembre de 2025", Date(time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)))
	require.Empty(t, Date(time.Time{}))
}
