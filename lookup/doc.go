// Package lookup compiles path expressions and evaluates them against
// records.
//
// A path joins field names with a separator (by default "__"). The final
// segment may name an operator:
//
//	name__icontains     substring, case-insensitive
//	invoices__amount    nested field, entered through the first invoice
//	id__in              identity membership
//
// Matching never fails: shape and type mismatches are simply non-matches.
//
// Known limitation: an array met before the last segment is entered through
// its first element only. A path does not match "any element" of a nested
// array. Collect is the exception and visits every element.
package lookup
