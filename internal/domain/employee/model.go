package employee

import (
	"fmt"
	"strings"

	"utilibill/internal/domain/refs"
)

// Employee is a staff member assigned to one branch with a role taken from
// the employee-type lookup.
type Employee struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Phone  string   `json:"phone"`
	Branch refs.Ref `json:"branch"`
	Type   refs.Ref `json:"employee_type"`
}

// EmployeeType is a lookup row for employee roles.
type EmployeeType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (e Employee) Key() int64 { return e.ID }

func (e Employee) Validate() error {
	var problems []string
	if strings.TrimSpace(e.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(e.Email) == "" || !strings.Contains(e.Email, "@") {
		problems = append(problems, "a valid email is required")
	}
	if e.Branch.IsZero() {
		problems = append(problems, "branch is required")
	}
	if e.Type.IsZero() {
		problems = append(problems, "employee type is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidData, strings.Join(problems, "; "))
	}
	return nil
}
