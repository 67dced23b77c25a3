// Package testutil provides testing utilities for queryset.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for nested records and for queries over
// them, so that properties can be checked against many random shapes.
//
// # Random Records
//
//	rng := testutil.NewRNG(seed)
//	recs := rng.Records(100)     // nested records with arrays and gaps
//	q := rng.Query()             // a random path -> target query
package testutil
