// Package record provides the typed value model queried by queryset.
//
// # Value Types
//
// A Value is one of:
//
//   - Null: record.Null()
//   - Int: record.Int(42)
//   - Float: record.Float(3.14)
//   - String: record.String("John")
//   - Bool: record.Bool(true)
//   - Array: record.Array([]record.Value{...})
//   - Object: record.Object(record.Record{...})
//
// Example:
//
//	user := record.Record{
//	    "id":   record.Int(1),
//	    "name": record.String("John Doe"),
//	    "profile": record.Object(record.Record{
//	        "active": record.Bool(true),
//	    }),
//	}
//
// Plain Go data (for example the output of encoding/json into any) can be
// adapted with FromAny and RecordFromAny.
//
// # Identity
//
// A Record may be identified by either an "id" or a "pk" field. Identity
// returns whichever is present, normalized so that 1 and "1" are the same
// identifier.
//
// # Comparison
//
// Equal is strict value equality, LooseEqual additionally equates numeric
// strings with numbers, and Compare provides the native ordering used for
// range lookups, sorting and min/max.
package record
