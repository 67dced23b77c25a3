package record

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hupe1980/queryset/internal/conv"
)

// ErrUnsupportedType is returned when a Go value has no Value representation.
var ErrUnsupportedType = errors.New("unsupported value type")

// FromAny converts a Go value into a typed Value.
//
// This exists as an adapter layer for user input: query targets and
// records decoded into plain maps go through here.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case Record:
		return Object(x), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint64(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint64(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: json number %q", ErrUnsupportedType, x.String())
		}
		return Float(f), nil
	case []Value:
		return Array(x), nil
	case []Record:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Object(x[i])
		}
		return Array(arr), nil
	case []any:
		arr := make([]Value, len(x))
		for i := range x {
			vv, err := FromAny(x[i])
			if err != nil {
				return Value{}, err
			}
			arr[i] = vv
		}
		return Array(arr), nil
	case []map[string]any:
		arr := make([]Value, len(x))
		for i := range x {
			r, err := RecordFromAny(x[i])
			if err != nil {
				return Value{}, err
			}
			arr[i] = Object(r)
		}
		return Array(arr), nil
	case []string:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = String(x[i])
		}
		return Array(arr), nil
	case []int:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Int(int64(x[i]))
		}
		return Array(arr), nil
	case []int64:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Int(x[i])
		}
		return Array(arr), nil
	case []float64:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Float(x[i])
		}
		return Array(arr), nil
	case []bool:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Bool(x[i])
		}
		return Array(arr), nil
	case map[string]any:
		r, err := RecordFromAny(x)
		if err != nil {
			return Value{}, err
		}
		return Object(r), nil
	case map[string]Value:
		return Object(Record(x)), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// MustFromAny is like FromAny but panics on unsupported input.
// Intended for literals in tests and examples.
func MustFromAny(v any) Value {
	val, err := FromAny(v)
	if err != nil {
		panic(err)
	}
	return val
}

// RecordFromAny converts a plain map[string]any document to a Record.
func RecordFromAny(m map[string]any) (Record, error) {
	r := make(Record, len(m))
	for k, v := range m {
		vv, err := FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		r[k] = vv
	}
	return r, nil
}

// ToAny converts v back into plain Go values: nil, int64, float64, string,
// bool, []any and map[string]any.
func (v Value) ToAny() any {
	switch v.Kind {
	case KindInt:
		return v.I64
	case KindFloat:
		return v.F64
	case KindString:
		return v.StringValue()
	case KindBool:
		return v.B
	case KindArray:
		out := make([]any, len(v.A))
		for i := range v.A {
			out[i] = v.A[i].ToAny()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.O))
		for k, f := range v.O {
			out[k] = f.ToAny()
		}
		return out
	default:
		return nil
	}
}

func fromUint64(x uint64) (Value, error) {
	n, err := conv.Uint64ToInt64(x)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}
	return Int(n), nil
}
