// Package cache provides a small generic LRU.
//
// It memoizes compiled path expressions so that repeated queries over the
// same paths skip re-splitting and operator lookup.
package cache
