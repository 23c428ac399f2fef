package record

import (
	"encoding/json"
	"strconv"
)

// Ref is a relationship value as stored by the backend. The wire shape is
// either a scalar id or an expanded object with an Id (and usually a Name);
// Ref accepts both and always resolves to the scalar id.
type Ref struct {
	id   int
	name string
	ok   bool
}

// NewRef builds a set Ref from a scalar id.
func NewRef(id int) Ref { return Ref{id: id, ok: id != 0} }

// ID returns the scalar foreign key, 0 when the relationship is absent.
func (r Ref) ID() int { return r.id }

// Name returns the display label when the backend expanded the relationship.
func (r Ref) Name() string { return r.name }

// IsZero reports an absent relationship.
func (r Ref) IsZero() bool { return !r.ok }

// MarshalJSON always emits the scalar shape.
func (r Ref) MarshalJSON() ([]byte, error) {
	if !r.ok {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(r.id)), nil
}

// UnmarshalJSON accepts null, a scalar id, or an expanded {Id, Name} object.
func (r *Ref) UnmarshalJSON(b []byte) error {
	*r = Ref{}
	if string(b) == "null" {
		return nil
	}
	if b[0] == '{' {
		var exp struct {
			ID   int    `json:"Id"`
			Name string `json:"Name"`
		}
		if err := json.Unmarshal(b, &exp); err != nil {
			return err
		}
		*r = Ref{id: exp.ID, name: exp.Name, ok: exp.ID != 0}
		return nil
	}
	var id int
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	*r = Ref{id: id, ok: id != 0}
	return nil
}

// RefFrom resolves a decoded stored value into a Ref. JSON decoding yields
// float64 for scalars and map[string]any for expanded objects; fixture data
// may hold ints or Refs directly.
func RefFrom(v any) Ref {
	switch val := v.(type) {
	case nil:
		return Ref{}
	case Ref:
		return val
	case int:
		return NewRef(val)
	case int64:
		return NewRef(int(val))
	case float64:
		return NewRef(int(val))
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return Ref{}
		}
		return NewRef(int(n))
	case map[string]any:
		id := AsInt(val["Id"])
		name, _ := val["Name"].(string)
		return Ref{id: id, name: name, ok: id != 0}
	default:
		return Ref{}
	}
}

// AsInt coerces a decoded numeric value to int, 0 when it is not numeric.
func AsInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return int(i)
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// AsFloat coerces a decoded numeric value to float64.
func AsFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// AsString coerces a decoded value to string, "" when absent.
func AsString(v any) string {
	s, _ := v.(string)
	return s
}
