package freight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/storelocator/pkg/freight"
)

func TestFeeTable_Estimate_EveryTier(t *testing.T) {
	table := freight.NewFeeTable()

	tests := []struct {
		name       string
		weightKg   float64
		distanceKm float64
		wantPrice  float64
		wantDays   int
	}{
		{"light short", 0.5, 50, 15.00, 2},
		{"light medium", 0.5, 150, 20.00, 3},
		{"light long", 0.5, 500, 28.00, 5},
		{"medium short", 2, 50, 22.00, 2},
		{"medium medium", 2, 150, 30.00, 4},
		{"medium long", 2, 500, 38.00, 6},
		{"heavy short", 4, 50, 30.00, 3},
		{"heavy medium", 4, 150, 40.00, 5},
		{"heavy long", 4, 500, 52.00, 7},
		{"very heavy long", 8, 500, 70.00, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := table.Estimate(tt.weightKg, tt.distanceKm, 10, 15, 20)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, quote.Price)
			assert.Equal(t, tt.wantDays, quote.Days)
		})
	}
}

func TestFeeTable_Estimate_VolumetricSurcharge(t *testing.T) {
	table := freight.NewFeeTable()

	// 30×30×30 = 27000 cm³ > 20000 threshold
	quote, err := table.Estimate(0.5, 50, 30, 30, 30)
	require.NoError(t, err)
	assert.Equal(t, 25.00, quote.Price)
}

func TestFeeTable_Estimate_VolumeAtThreshold(t *testing.T) {
	table := freight.NewFeeTable()

	// Exactly at the threshold: no surcharge (strictly greater required).
	quote, err := table.Estimate(0.5, 50, 20, 25, 40)
	require.NoError(t, err)
	assert.Equal(t, 15.00, quote.Price)
}

func TestFeeTable_Estimate_FirstMatchWins(t *testing.T) {
	table := freight.NewFeeTable()

	// Weight 1 sits on the boundary of the first and fourth tiers;
	// the earlier row in the table wins.
	quote, err := table.Estimate(1, 50, 10, 15, 20)
	require.NoError(t, err)
	assert.Equal(t, 15.00, quote.Price)
}

func TestFeeTable_Estimate_NoMatchingTier(t *testing.T) {
	table := freight.NewFeeTable()

	// No tier covers weight above 5 kg with distance at or below 200 km.
	_, err := table.Estimate(8, 150, 10, 15, 20)
	assert.ErrorIs(t, err, freight.ErrNoMatchingTier)
}

func TestFeeTable_Estimate_WeightOutOfRange(t *testing.T) {
	table := freight.NewFeeTable()

	_, err := table.Estimate(50, 500, 10, 15, 20)
	assert.ErrorIs(t, err, freight.ErrNoMatchingTier)
}

func TestFeeTable_Estimate_UnboundedDistance(t *testing.T) {
	table := freight.NewFeeTable()

	quote, err := table.Estimate(0.5, 10000, 10, 15, 20)
	require.NoError(t, err)
	assert.Equal(t, 28.00, quote.Price)
}

func TestQuote_Deadline(t *testing.T) {
	q := freight.Quote{Service: freight.ServicePAC, Price: 25.00, Days: 5}
	assert.Equal(t, "5 dias úteis", q.Deadline())
}
