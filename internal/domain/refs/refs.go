package refs

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates the wire shapes the backend uses for a related entity.
type Kind int

const (
	// KindNone is the zero ref: no relation selected.
	KindNone Kind = iota
	// KindID is a bare numeric identifier.
	KindID
	// KindInline is a bare display name with no identifier.
	KindInline
	// KindExpanded is a nested object carrying both.
	KindExpanded
)

// Ref is a reference to a related entity. The backend is inconsistent about
// how it serializes relations: list endpoints sometimes expand the related
// object, sometimes return just its name, and write endpoints expect the bare
// id. Ref absorbs all three shapes on decode and always encodes as the id
// when one is known.
type Ref struct {
	kind Kind
	id   int64
	name string
}

// ByID builds an id-only reference, the shape write requests use.
func ByID(id int64) Ref {
	if id == 0 {
		return Ref{}
	}
	return Ref{kind: KindID, id: id}
}

// Expanded builds a fully populated reference.
func Expanded(id int64, name string) Ref {
	return Ref{kind: KindExpanded, id: id, name: name}
}

func (r Ref) Kind() Kind { return r.kind }

// ID returns the numeric identifier, 0 when unknown (none or inline).
func (r Ref) ID() int64 { return r.id }

// IsZero reports whether no relation is selected. Forms treat missing
// numeric foreign keys as zero on hydration.
func (r Ref) IsZero() bool { return r.kind == KindNone }

// DisplayName produces the single label shown in list rows, regardless of
// which shape the backend returned.
func (r Ref) DisplayName() string {
	switch r.kind {
	case KindInline, KindExpanded:
		return r.name
	case KindID:
		return "#" + strconv.FormatInt(r.id, 10)
	default:
		return ""
	}
}

func (r Ref) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case KindNone:
		return []byte("null"), nil
	case KindInline:
		return json.Marshal(r.name)
	default:
		return json.Marshal(r.id)
	}
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = Ref{}
		return nil
	}
	switch b[0] {
	case '"':
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return fmt.Errorf("decode inline ref: %w", err)
		}
		if name == "" {
			*r = Ref{}
			return nil
		}
		*r = Ref{kind: KindInline, name: name}
		return nil
	case '{':
		var obj struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return fmt.Errorf("decode expanded ref: %w", err)
		}
		*r = Ref{kind: KindExpanded, id: obj.ID, name: obj.Name}
		return nil
	default:
		var id int64
		if err := json.Unmarshal(b, &id); err != nil {
			return fmt.Errorf("decode ref id: %w", err)
		}
		*r = ByID(id)
		return nil
	}
}
