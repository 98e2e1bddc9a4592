package model

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/repstack/repcore/internal/id"
)

// Plate is a single weight plate.
type Plate struct {
	ID     id.ID   `json:"id"`
	Weight float64 `json:"weight"`
}

// NewPlate creates a plate of the given weight.
func NewPlate(weight float64) Plate {
	return Plate{ID: id.New(), Weight: weight}
}

// StandardPlates returns the pound catalog, largest first.
func StandardPlates() []Plate {
	return platesOf(45, 35, 25, 10, 5, 2.5)
}

// StandardPlatesKg returns the kilogram catalog, largest first.
func StandardPlatesKg() []Plate {
	return platesOf(25, 20, 15, 10, 5, 2.5, 1.25)
}

func platesOf(weights ...float64) []Plate {
	plates := make([]Plate, 0, len(weights))
	for _, w := range weights {
		plates = append(plates, NewPlate(w))
	}
	return plates
}

// BarType is a barbell variant with its empty weight.
type BarType struct {
	ID     id.ID   `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// NewBarType creates a bar with the given display name and weight.
func NewBarType(name string, weight float64) BarType {
	return BarType{ID: id.New(), Name: name, Weight: weight}
}

// OlympicBar is the standard 45 lb Olympic barbell.
func OlympicBar() BarType { return NewBarType("Olympic", 45) }

// StandardBar is a 20 lb standard barbell.
func StandardBar() BarType { return NewBarType("Standard", 20) }

// EZBar is a 20 lb EZ curl bar.
func EZBar() BarType { return NewBarType("EZ Bar", 20) }

// TrapBar is a 45 lb trap/hex bar.
func TrapBar() BarType { return NewBarType("Trap Bar", 45) }

// AllBars returns the common bar catalog.
func AllBars() []BarType {
	return []BarType{OlympicBar(), StandardBar(), EZBar(), TrapBar()}
}

// plateEpsilon tolerates floating-point representation error at exact
// matches. Without it, a remaining weight of exactly 90.0 can fall
// fractionally below a 45.0 plate and the plate gets dropped.
const plateEpsilon = 0.01

// FillPlates runs the greedy largest-first fill for one side of the bar.
//
// The catalog must be sorted largest first. For each size the fill keeps
// subtracting while the remainder is at least plateWeight - epsilon. The
// fill never backtracks and never removes a placed plate; any residual that
// no catalog plate fits is simply left unaccounted, matching how bars are
// loaded in practice.
func FillPlates(weightPerSide float64, catalog []Plate) []Plate {
	remaining := weightPerSide
	var plates []Plate
	for _, p := range catalog {
		for remaining >= p.Weight-plateEpsilon {
			plates = append(plates, NewPlate(p.Weight))
			remaining -= p.Weight
		}
	}
	return plates
}

// PlateCalculation is the result of a plate-loading computation.
type PlateCalculation struct {
	TotalWeight float64    `json:"total_weight"`
	BarType     BarType    `json:"bar_type"`
	Plates      []Plate    `json:"plates"`
	WeightUnit  WeightUnit `json:"weight_unit"`
}

// Description renders the plate list grouped by weight, e.g.
// "2x45lb, 1x25lb" or "1x20kg, 2x1.25kg".
//
// Weights are grouped in hundredths so sub-unit plates (1.25 kg) keep their
// identity, sorted descending, and whole-number weights render without a
// decimal point.
func (c *PlateCalculation) Description() string {
	counts := make(map[int]int)
	for _, p := range c.Plates {
		key := int(math.Round(p.Weight * 100))
		counts[key]++
	}

	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	suffix := c.WeightUnit.Suffix()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		weight := float64(k) / 100
		parts = append(parts, fmt.Sprintf("%dx%s%s", counts[k], formatWeight(weight), suffix))
	}
	return strings.Join(parts, ", ")
}

// formatWeight renders whole numbers without a decimal point and fractional
// weights in their natural decimal form (2.5, 1.25).
func formatWeight(w float64) string {
	if w == math.Trunc(w) {
		return strconv.FormatFloat(w, 'f', 0, 64)
	}
	return strconv.FormatFloat(w, 'f', -1, 64)
}
