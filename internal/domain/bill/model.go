package bill

import (
	"fmt"
	"strings"
	"time"

	"utilibill/internal/domain/refs"
)

// Bill is one monthly charge against a customer's meter.
type Bill struct {
	ID          int64    `json:"id"`
	Customer    refs.Ref `json:"customer"`
	BillDate    string   `json:"bill_date"` // date-only, 2006-01-02
	Month       int      `json:"month"`     // 1..12, 0 when unselected
	Year        int      `json:"year"`
	PrevReading float64  `json:"prev_reading"`
	CurrReading float64  `json:"curr_reading"`
	MinCharge   float64  `json:"min_charge"`
	Rate        float64  `json:"rate"`
}

// Key returns the primary identifier used for row removal after delete.
func (b Bill) Key() int64 { return b.ID }

// Amount is the charge: consumed units at the unit rate, floored at the
// minimum charge.
func (b Bill) Amount() float64 {
	consumed := (b.CurrReading - b.PrevReading) * b.Rate
	if consumed < b.MinCharge {
		return b.MinCharge
	}
	return consumed
}

// Validate runs the client-side required-field and cross-field checks before
// any network call. Failures are aggregated into a single message.
func (b Bill) Validate() error {
	var problems []string
	if b.Customer.IsZero() {
		problems = append(problems, "customer is required")
	}
	if b.BillDate == "" {
		problems = append(problems, "bill date is required")
	}
	if b.Month < 1 || b.Month > 12 {
		problems = append(problems, "month is required")
	}
	if b.Year == 0 {
		problems = append(problems, "year is required")
	}
	if b.CurrReading < b.PrevReading {
		problems = append(problems, "current reading must not be below previous reading")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidData, strings.Join(problems, "; "))
	}
	return nil
}

// Normalize coerces incoming field values into canonical form: the bill date
// loses any time component, an absent customer stays the zero ref.
func (b *Bill) Normalize() {
	b.BillDate = NormalizeDate(b.BillDate)
}

// NormalizeDate reduces a backend date value, which may arrive with a time
// component, to its date-only representation. Unparseable input comes back
// unchanged so validation can reject it.
func NormalizeDate(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
