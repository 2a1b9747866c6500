package demandtype

import (
	"fmt"
	"strings"
)

// DemandType is a tariff category: the minimum charge and per-unit rate
// applied to customers billed under it.
type DemandType struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	MinCharge float64 `json:"min_charge"`
	Rate      float64 `json:"rate"`
}

func (d DemandType) Key() int64 { return d.ID }

func (d DemandType) Validate() error {
	var problems []string
	if strings.TrimSpace(d.Name) == "" {
		problems = append(problems, "name is required")
	}
	if d.Rate <= 0 {
		problems = append(problems, "rate must be positive")
	}
	if d.MinCharge < 0 {
		problems = append(problems, "minimum charge must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidData, strings.Join(problems, "; "))
	}
	return nil
}
