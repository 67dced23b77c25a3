package lookup

import "github.com/hupe1980/queryset/record"

// field looks up seg on cur. The identity aliases resolve to the record
// identity rather than the raw field.
func field(cur record.Value, seg string) (record.Value, bool) {
	r, ok := cur.AsRecord()
	if !ok {
		return record.Value{}, false
	}
	if record.IsIdentityField(seg) {
		if id, ok := r.Identity(); ok {
			return id, true
		}
	}
	v, ok := r[seg]
	return v, ok
}

// Resolve walks segs from v and returns the addressed value.
//
// Arrays met before the final segment are entered through their first
// element only. An array at the final segment is returned whole. The
// second result is false when a segment is absent.
func Resolve(v record.Value, segs []string) (record.Value, bool) {
	cur := v
	last := len(segs) - 1
	for i, seg := range segs {
		next, ok := field(cur, seg)
		if !ok {
			return record.Value{}, false
		}
		if i == last {
			return next, true
		}
		if arr, ok := next.AsArray(); ok {
			if len(arr) == 0 {
				return record.Value{}, false
			}
			next = arr[0]
		}
		cur = next
	}
	return cur, true
}

// Collect appends every leaf addressed by segs under v to dst.
//
// Unlike Resolve, Collect fans out over every element of an array: a
// terminal array contributes each element and an interior array continues
// the walk through each element. Traversal is depth-first in document
// order.
func Collect(v record.Value, segs []string, dst []record.Value) []record.Value {
	cur := v
	last := len(segs) - 1
	for i, seg := range segs {
		next, ok := field(cur, seg)
		if !ok {
			return dst
		}
		if arr, ok := next.AsArray(); ok {
			if i == last {
				return append(dst, arr...)
			}
			rest := segs[i+1:]
			for _, el := range arr {
				dst = Collect(el, rest, dst)
			}
			return dst
		}
		if i == last {
			return append(dst, next)
		}
		cur = next
	}
	return dst
}
