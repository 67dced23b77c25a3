// Package bitmap provides the position sets used while evaluating queries.
//
// Positions index into a QuerySet's backing slice. Bitmap is a compressed
// Roaring set used for unions across query dictionaries; Mask is a dense
// bitset used where every position is visited anyway.
package bitmap
