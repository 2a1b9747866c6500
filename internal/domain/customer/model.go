package customer

import (
	"fmt"
	"strings"

	"utilibill/internal/domain/refs"
)

// Customer is a metered account holder attached to a branch and billed under
// a demand type.
type Customer struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Phone      string   `json:"phone"`
	Branch     refs.Ref `json:"branch"`
	DemandType refs.Ref `json:"demand_type"`
	MeterNo    string   `json:"meter_no"`
}

func (c Customer) Key() int64 { return c.ID }

func (c Customer) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(c.Address) == "" {
		problems = append(problems, "address is required")
	}
	if c.Branch.IsZero() {
		problems = append(problems, "branch is required")
	}
	if c.DemandType.IsZero() {
		problems = append(problems, "demand type is required")
	}
	if strings.TrimSpace(c.MeterNo) == "" {
		problems = append(problems, "meter number is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidData, strings.Join(problems, "; "))
	}
	return nil
}
