package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillPlates_ExactMatch(t *testing.T) {
	// 90 per side = two 45s; the epsilon keeps the exact match from being
	// dropped by float rounding.
	plates := FillPlates(90, StandardPlates())
	require.Len(t, plates, 2)
	assert.Equal(t, 45.0, plates[0].Weight)
	assert.Equal(t, 45.0, plates[1].Weight)
}

func TestFillPlates_MixedSizes(t *testing.T) {
	// 102.5 per side: 45 + 45 + 10 + 2.5
	plates := FillPlates(102.5, StandardPlates())
	weights := make([]float64, len(plates))
	for i, p := range plates {
		weights[i] = p.Weight
	}
	assert.Equal(t, []float64{45, 45, 10, 2.5}, weights)
}

func TestFillPlates_ResidualLeftUnaccounted(t *testing.T) {
	// 1.0 per side: smallest pound plate is 2.5, so nothing fits. Greedy
	// fill leaves the residual rather than failing.
	plates := FillPlates(1.0, StandardPlates())
	assert.Empty(t, plates)
}

func TestFillPlates_Zero(t *testing.T) {
	assert.Empty(t, FillPlates(0, StandardPlates()))
}

func TestDescription_Pounds(t *testing.T) {
	calc := PlateCalculation{
		TotalWeight: 225,
		BarType:     NewBarType("Bar", 45),
		Plates:      FillPlates(90, StandardPlates()),
		WeightUnit:  UnitLb,
	}
	assert.Equal(t, "2x45lb", calc.Description())
}

func TestDescription_FractionalKilogramPlates(t *testing.T) {
	// Regression: 1.25 kg plates must keep their decimal form and must not
	// collapse into the same group as other weights.
	calc := PlateCalculation{
		TotalWeight: 62.5,
		BarType:     NewBarType("Bar", 20),
		Plates:      []Plate{NewPlate(20), NewPlate(1.25), NewPlate(1.25)},
		WeightUnit:  UnitKg,
	}
	desc := calc.Description()
	assert.Contains(t, desc, "1x20kg")
	assert.Contains(t, desc, "2x1.25kg")
	assert.Equal(t, "1x20kg, 2x1.25kg", desc)
}

func TestDescription_GroupsSortedDescending(t *testing.T) {
	calc := PlateCalculation{
		Plates:     []Plate{NewPlate(2.5), NewPlate(45), NewPlate(45), NewPlate(10)},
		WeightUnit: UnitLb,
	}
	assert.Equal(t, "2x45lb, 1x10lb, 1x2.5lb", calc.Description())
}

func TestStandardCatalogs(t *testing.T) {
	lb := StandardPlates()
	require.Len(t, lb, 6)
	assert.Equal(t, 45.0, lb[0].Weight)
	assert.Equal(t, 2.5, lb[5].Weight)

	kg := StandardPlatesKg()
	require.Len(t, kg, 7)
	assert.Equal(t, 25.0, kg[0].Weight)
	assert.Equal(t, 1.25, kg[6].Weight)
}
