// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow
// when converting between signed/unsigned and different bit-width integer
// types.
//
// Use cases:
//   - Validating untrusted data (block headers, decoded numbers)
//   - Converting between Go's int (platform-dependent) and fixed-width types
package conv
