package record

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// MarshalJSON implements json.Marshaler. Values encode as plain JSON:
// records as objects, arrays as arrays, scalars as scalars.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToAny())
}

// UnmarshalJSON implements json.Unmarshaler. Integral numbers decode as
// Int, every other number as Float.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	parsed, err := FromAny(raw)
	if err != nil {
		return fmt.Errorf("decode value: %w", err)
	}
	*v = parsed
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Record) UnmarshalJSON(data []byte) error {
	var v Value
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	obj, ok := v.AsRecord()
	if !ok {
		return fmt.Errorf("%w: expected object, got %s", ErrUnsupportedType, v.Kind)
	}
	*r = obj
	return nil
}
