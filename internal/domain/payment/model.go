package payment

import (
	"fmt"
	"strings"

	"utilibill/internal/domain/refs"
)

// Payment records money received against a bill.
type Payment struct {
	ID     int64    `json:"id"`
	Bill   refs.Ref `json:"bill"`
	Amount float64  `json:"amount"`
	PaidAt string   `json:"paid_at"` // date-only, 2006-01-02
}

func (p Payment) Key() int64 { return p.ID }

func (p Payment) Validate() error {
	var problems []string
	if p.Bill.IsZero() {
		problems = append(problems, "bill is required")
	}
	if p.Amount <= 0 {
		problems = append(problems, "amount must be positive")
	}
	if p.PaidAt == "" {
		problems = append(problems, "payment date is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidData, strings.Join(problems, "; "))
	}
	return nil
}
