package app

import (
	"fmt"
	"strconv"

	"github.com/repstack/repcore/internal/model"
)

func (c *Core) handlePlates(ev Event) []Effect {
	m := &c.model
	switch ev.Kind {
	case EventCalculatePlates:
		if ev.Plates == nil {
			return nil
		}
		p := ev.Plates
		switch {
		case p.TargetWeight <= 0:
			m.PlateCalculation = nil
			return c.fail("Target weight must be greater than 0")
		case p.BarWeight <= 0:
			m.PlateCalculation = nil
			return c.fail("Bar weight must be greater than 0")
		case p.Percentage != nil && (*p.Percentage < 0 || *p.Percentage > 100):
			m.PlateCalculation = nil
			return c.fail(fmt.Sprintf("Percentage must be between 0 and 100 (got %s)",
				strconv.FormatFloat(*p.Percentage, 'f', -1, 64)))
		}

		actual := p.TargetWeight
		if p.Percentage != nil {
			actual = p.TargetWeight * (*p.Percentage / 100)
		}
		perSide := (actual - p.BarWeight) / 2
		if perSide < 0 {
			m.PlateCalculation = nil
			return c.fail("Target weight is less than bar weight")
		}
		m.PlateCalculation = &model.PlateCalculation{
			TotalWeight: actual,
			BarType:     model.NewBarType("Bar", p.BarWeight),
			Plates:      model.FillPlates(perSide, model.StandardPlates()),
			WeightUnit:  model.UnitLb,
		}
		m.ErrorMessage = ""

	case EventClearPlateCalculation:
		m.PlateCalculation = nil

	case EventShowPlateCalculator:
		m.ShowingPlateCalculator = true

	case EventDismissPlateCalculator:
		m.ShowingPlateCalculator = false
		m.PlateCalculation = nil
	}
	return nil
}
