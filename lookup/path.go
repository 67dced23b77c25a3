package lookup

import (
	"strings"

	"github.com/hupe1980/queryset/internal/cache"
)

// DefaultSeparator joins path segments when none is configured.
const DefaultSeparator = "__"

// Path is a compiled path expression.
//
// Segments holds every token, including a trailing operator token: whether
// that token is an operator or a field is only decided while walking a
// concrete record, since a record may carry a field literally named "in".
type Path struct {
	Raw      string
	Segments []string
	// Op is the operator named by the final segment, or OpNone.
	Op Operator
}

// Compile splits expr on sep and tags the trailing operator.
func Compile(expr, sep string) Path {
	if sep == "" {
		sep = DefaultSeparator
	}
	segments := strings.Split(expr, sep)
	op, _ := ParseOperator(segments[len(segments)-1])
	return Path{
		Raw:      expr,
		Segments: segments,
		Op:       op,
	}
}

// Last returns the index of the final segment.
func (p Path) Last() int {
	return len(p.Segments) - 1
}

type compileKey struct {
	expr string
	sep  string
}

// Compiler memoizes compiled paths. It is safe for concurrent use.
type Compiler struct {
	paths *cache.LRU[compileKey, Path]
}

// DefaultCompilerSize is the number of compiled paths a Compiler keeps.
const DefaultCompilerSize = 1024

// NewCompiler creates a Compiler caching up to size paths.
func NewCompiler(size int) *Compiler {
	return &Compiler{paths: cache.NewLRU[compileKey, Path](size)}
}

// Compile returns the compiled form of expr under sep.
// Callers must treat the returned Segments as read-only.
func (c *Compiler) Compile(expr, sep string) Path {
	if c == nil {
		return Compile(expr, sep)
	}
	key := compileKey{expr: expr, sep: sep}
	if p, ok := c.paths.Get(key); ok {
		return p
	}
	p := Compile(expr, sep)
	c.paths.Set(key, p)
	return p
}

// Stats returns the cache hit and miss counters.
func (c *Compiler) Stats() (hits, misses int64) {
	return c.paths.Stats()
}
