package freight

// FeeTable is the local fallback estimator: a fixed tier table keyed by
// weight and road distance, with a volumetric surcharge. It performs no
// I/O and is used when no carrier quote is wanted or available.
type FeeTable struct {
	tiers []Tier

	// VolumeThresholdCm3 is the package volume above which the
	// volumetric surcharge applies.
	VolumeThresholdCm3 float64

	// VolumeSurcharge is added once when the threshold is exceeded.
	VolumeSurcharge float64
}

// Tier is one row of the fee table. Intervals are closed on both ends;
// a negative MaxDistanceKm means the tier is unbounded above.
type Tier struct {
	MinWeightKg   float64
	MaxWeightKg   float64
	MinDistanceKm float64
	MaxDistanceKm float64
	Price         float64
	Days          int
}

// matches reports whether the weight/distance pair falls inside the tier.
func (t Tier) matches(weightKg, distanceKm float64) bool {
	if weightKg < t.MinWeightKg || weightKg > t.MaxWeightKg {
		return false
	}
	if distanceKm < t.MinDistanceKm {
		return false
	}
	return t.MaxDistanceKm < 0 || distanceKm <= t.MaxDistanceKm
}

// NewFeeTable creates the standard fee table.
// Weights above 5 kg are only priced beyond 200 km; other combinations
// have no tier and fail with ErrNoMatchingTier.
func NewFeeTable() *FeeTable {
	return &FeeTable{
		VolumeThresholdCm3: 20000,
		VolumeSurcharge:    10.00,
		tiers: []Tier{
			{MinWeightKg: 0, MaxWeightKg: 1, MinDistanceKm: 0, MaxDistanceKm: 100, Price: 15.00, Days: 2},
			{MinWeightKg: 0, MaxWeightKg: 1, MinDistanceKm: 100, MaxDistanceKm: 200, Price: 20.00, Days: 3},
			{MinWeightKg: 0, MaxWeightKg: 1, MinDistanceKm: 200, MaxDistanceKm: -1, Price: 28.00, Days: 5},
			{MinWeightKg: 1, MaxWeightKg: 3, MinDistanceKm: 0, MaxDistanceKm: 100, Price: 22.00, Days: 2},
			{MinWeightKg: 1, MaxWeightKg: 3, MinDistanceKm: 100, MaxDistanceKm: 200, Price: 30.00, Days: 4},
			{MinWeightKg: 1, MaxWeightKg: 3, MinDistanceKm: 200, MaxDistanceKm: -1, Price: 38.00, Days: 6},
			{MinWeightKg: 3, MaxWeightKg: 5, MinDistanceKm: 0, MaxDistanceKm: 100, Price: 30.00, Days: 3},
			{MinWeightKg: 3, MaxWeightKg: 5, MinDistanceKm: 100, MaxDistanceKm: 200, Price: 40.00, Days: 5},
			{MinWeightKg: 3, MaxWeightKg: 5, MinDistanceKm: 200, MaxDistanceKm: -1, Price: 52.00, Days: 7},
			{MinWeightKg: 5, MaxWeightKg: 10, MinDistanceKm: 200, MaxDistanceKm: -1, Price: 70.00, Days: 9},
		},
	}
}

// Estimate returns the price and lead time for a package. The table is
// scanned in order and the first matching tier wins. The volumetric
// surcharge is added when height×width×length exceeds the threshold.
func (f *FeeTable) Estimate(weightKg, distanceKm, heightCm, widthCm, lengthCm float64) (*Quote, error) {
	for _, tier := range f.tiers {
		if !tier.matches(weightKg, distanceKm) {
			continue
		}

		price := tier.Price
		if heightCm*widthCm*lengthCm > f.VolumeThresholdCm3 {
			price += f.VolumeSurcharge
		}

		return &Quote{
			Service: "TABELA",
			Price:   price,
			Days:    tier.Days,
		}, nil
	}

	return nil, ErrNoMatchingTier
}
