package lookup

import (
	"strings"

	"github.com/hupe1980/queryset/record"
)

// Matcher evaluates a compiled path against a target value.
type Matcher struct {
	Comparator
}

// NewMatcher creates a Matcher using c for ordering lookups.
func NewMatcher(c Comparator) Matcher {
	return Matcher{Comparator: c}
}

// Match reports whether v satisfies path against target.
//
// Segments are walked left to right. A present segment descends into its
// value; an array met before the final segment continues through its first
// element only. The first absent segment ends the walk: if it is the final
// segment and names an operator, that operator is applied to the value
// reached so far.
func (m Matcher) Match(v record.Value, path Path, target record.Value) bool {
	if len(path.Segments) == 0 {
		return false
	}
	return m.match(v, path.Segments, path.Op, target)
}

func (m Matcher) match(cur record.Value, segs []string, op Operator, target record.Value) bool {
	last := len(segs) - 1
	for i, seg := range segs {
		next, ok := field(cur, seg)
		if !ok {
			return m.absent(cur, seg, i == last, op, target)
		}

		// isnull right after a present field applies to that field.
		if i+1 == last && op == OpIsNull {
			if want, ok := target.AsBool(); ok {
				return next.IsEmpty() == want
			}
		}

		if arr, ok := next.AsArray(); ok {
			if i == last {
				if target.IsNull() {
					return len(arr) == 0
				}
				return record.Equal(next, target)
			}
			if len(arr) > 0 {
				return m.match(arr[0], segs[i+1:], op, target)
			}
			cur = next
			continue
		}

		if i == last {
			return record.LooseEqual(next, target)
		}
		cur = next
	}
	return false
}

// absent handles the first segment not found on cur.
func (m Matcher) absent(cur record.Value, seg string, isLast bool, op Operator, target record.Value) bool {
	if op == OpIsNull {
		if want, ok := target.AsBool(); ok {
			return want
		}
	}
	if !isLast {
		return op != OpNot && target.IsNull()
	}
	segOp, ok := ParseOperator(seg)
	if !ok {
		// Unknown field: only a null target expects it to be missing.
		return target.IsNull()
	}
	return m.Apply(segOp, cur, target)
}

// Apply evaluates a single operator against v.
func (m Matcher) Apply(op Operator, v, target record.Value) bool {
	switch {
	case op == OpNone:
		return record.LooseEqual(v, target)
	case op == OpNot:
		if target.IsNull() {
			return !v.IsEmpty()
		}
		return !record.LooseEqual(v, target)
	case op == OpIsNull:
		want, ok := target.AsBool()
		return ok && v.IsEmpty() == want
	case op.isString():
		s, ok := v.AsString()
		if !ok {
			return false
		}
		t, ok := target.AsString()
		if !ok {
			return false
		}
		return matchString(op, s, t)
	case op == OpIn, op == OpNotIn:
		candidates, ok := target.AsArray()
		if !ok {
			return false
		}
		found := false
		for _, c := range candidates {
			if record.LooseEqual(v, c) {
				found = true
				break
			}
		}
		return found == (op == OpIn)
	case op.isOrdering():
		if target.IsNull() {
			return false
		}
		n, ok := m.Compare(v, target)
		if !ok {
			return false
		}
		switch op {
		case OpLt:
			return n < 0
		case OpLte:
			return n <= 0
		case OpGt:
			return n > 0
		default:
			return n >= 0
		}
	case op == OpRange:
		bounds, ok := target.AsArray()
		if !ok || len(bounds) != 2 {
			return false
		}
		lo, ok := m.Compare(v, bounds[0])
		if !ok || lo < 0 {
			return false
		}
		hi, ok := m.Compare(v, bounds[1])
		return ok && hi <= 0
	default:
		return target.IsNull()
	}
}

func matchString(op Operator, s, t string) bool {
	switch op {
	case OpExact:
		return strings.TrimSpace(s) == strings.TrimSpace(t)
	case OpIExact:
		return strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(t))
	case OpContains:
		return strings.Contains(strings.TrimSpace(s), strings.TrimSpace(t))
	case OpIContains:
		return strings.Contains(
			strings.ToLower(strings.TrimSpace(s)),
			strings.ToLower(strings.TrimSpace(t)),
		)
	case OpStartsWith:
		return strings.HasPrefix(s, t)
	case OpIStartsWith:
		return strings.HasPrefix(strings.ToLower(s), strings.ToLower(t))
	case OpEndsWith:
		return strings.HasSuffix(s, t)
	case OpIEndsWith:
		return strings.HasSuffix(strings.ToLower(s), strings.ToLower(t))
	default:
		return false
	}
}
