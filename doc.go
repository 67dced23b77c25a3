// Package queryset queries in-memory collections of nested records with
// Django-style path lookups.
//
// A QuerySet wraps an ordered slice of record.Values. Queries address
// nested fields with paths joined by "__" and may end in a lookup
// operator:
//
//	users := queryset.FromRecords(records)
//
//	active := users.Filter(queryset.Query{"profile__active": true})
//	admins := users.Filter(queryset.Query{"name__icontains": "adm"})
//	either := users.Filter(queryset.Query{"id": 1}, queryset.Query{"name": "Admin"})
//	others := users.Exclude(queryset.Query{"id": 1})
//
// # Lookups
//
// exact, iexact, contains, icontains, startswith, istartswith, endswith,
// iendswith, in, not_in, lt, lte, gt, gte, range, isnull and not. A path
// without an operator tests equality. The fields id and pk are aliases for
// the record identity.
//
// Within one Query every entry must match. Several Queries passed to
// Filter match when any of them does. Exclude is the exact complement of
// Filter.
//
// # Ordering
//
// OrderBy sorts in place. It applies one stable sort per field in argument
// order, so the last field wins:
//
//	users.OrderBy("name", "-id") // primary key: id descending
//
// # Aggregates
//
//	total := orders.Sum("invoices__amount")
//	first, ok := orders.Min("invoices__date")
//	amounts := orders.ValuesList("invoices__amount")
//
// # Dates
//
// Strings that parse under one of the configured date formats compare
// chronologically in ordering lookups, OrderBy, Min and Max. Formats use
// moment-style tokens (DD/MM/YYYY) or Go layouts. Use WithDateParser(nil)
// to turn date detection off.
//
// # Limitations
//
// An array in the middle of a path is entered through its first element
// only: {"invoices__amount": 500} does not look at the second invoice.
// ValuesList and the aggregates built on it do visit every element.
package queryset
