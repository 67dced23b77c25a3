package record

import (
	"strconv"
	"strings"
)

// Identity field names. Both resolve to the same logical identity.
const (
	IDField = "id"
	PKField = "pk"
)

// Record is a schema-free structured data item.
type Record map[string]Value

// Get returns the named field.
func (r Record) Get(name string) (Value, bool) {
	v, ok := r[name]
	return v, ok
}

// Has reports whether r carries an own field called name.
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Identity returns the record identity from the id field, falling back to
// pk. Numbers and strings holding an integer literal normalize to Int so
// that numeric and string identifiers compare alike. The second result is
// false when neither field holds a usable identifier.
func (r Record) Identity() (Value, bool) {
	if v, ok := r[IDField]; ok {
		if id, ok := NormalizeIdentity(v); ok {
			return id, true
		}
	}
	if v, ok := r[PKField]; ok {
		if id, ok := NormalizeIdentity(v); ok {
			return id, true
		}
	}
	return Value{}, false
}

// NormalizeIdentity converts an identifier to its canonical form.
func NormalizeIdentity(v Value) (Value, bool) {
	switch v.Kind {
	case KindInt:
		return v, true
	case KindFloat:
		return Int(int64(v.F64)), true
	case KindString:
		s := strings.TrimSpace(v.StringValue())
		if s == "" {
			return Value{}, false
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(n), true
		}
		return String(s), true
	default:
		return Value{}, false
	}
}

// IsIdentityField reports whether name is one of the identity aliases.
func IsIdentityField(name string) bool {
	return name == IDField || name == PKField
}
