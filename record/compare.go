package record

import (
	"cmp"
	"strings"
)

// Equal reports whether a and b hold the same value. Numbers compare across
// Int and Float; arrays and records compare element-wise.
func Equal(a, b Value) bool {
	if a.IsNull() && b.IsNull() {
		return true
	}
	if a.IsNull() || b.IsNull() {
		return false
	}

	if a.IsNumber() && b.IsNumber() {
		// Prefer exact int compare when possible.
		if a.Kind == KindInt && b.Kind == KindInt {
			return a.I64 == b.I64
		}
		af, _ := a.AsFloat64()
		bf, _ := b.AsFloat64()
		return af == bf
	}

	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindString:
		return a.s == b.s
	case KindBool:
		return a.B == b.B
	case KindArray:
		if len(a.A) != len(b.A) {
			return false
		}
		for i := range a.A {
			if !Equal(a.A[i], b.A[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.O) != len(b.O) {
			return false
		}
		for k, av := range a.O {
			bv, ok := b.O[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// LooseEqual is Equal extended with string/number coercion: a string that
// parses as a number equals that number. Booleans never equal numbers.
func LooseEqual(a, b Value) bool {
	if Equal(a, b) {
		return true
	}
	switch {
	case a.Kind == KindString && b.IsNumber():
		n, ok := a.Number()
		bf, _ := b.AsFloat64()
		return ok && strings.TrimSpace(a.StringValue()) != "" && n == bf
	case a.IsNumber() && b.Kind == KindString:
		return LooseEqual(b, a)
	default:
		return false
	}
}

// Compare orders a against b natively: numbers numerically, strings
// lexically, booleans false before true. The second result is false when
// the two values have no natural order relative to each other.
func Compare(a, b Value) (int, bool) {
	if a.IsNumber() && b.IsNumber() {
		if a.Kind == KindInt && b.Kind == KindInt {
			return cmp.Compare(a.I64, b.I64), true
		}
		af, _ := a.AsFloat64()
		bf, _ := b.AsFloat64()
		return cmp.Compare(af, bf), true
	}
	if a.Kind != b.Kind {
		return 0, false
	}
	switch a.Kind {
	case KindString:
		return strings.Compare(a.StringValue(), b.StringValue()), true
	case KindBool:
		switch {
		case a.B == b.B:
			return 0, true
		case b.B:
			return -1, true
		default:
			return 1, true
		}
	default:
		return 0, false
	}
}
