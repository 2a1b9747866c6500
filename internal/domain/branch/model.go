package branch

import (
	"fmt"
	"strings"
)

type Branch struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (b Branch) Key() int64 { return b.ID }

func (b Branch) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidData)
	}
	return nil
}
