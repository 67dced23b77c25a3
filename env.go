package queryset

import (
	"sync"

	"github.com/hupe1980/queryset/codec"
	"github.com/hupe1980/queryset/datefmt"
	"github.com/hupe1980/queryset/lookup"
)

// env is the immutable evaluation context shared by a QuerySet and every
// QuerySet derived from it.
type env struct {
	config      Config
	parser      datefmt.Parser
	matcher     lookup.Matcher
	compiler    *lookup.Compiler
	codec       codec.Codec
	compression codec.Compression
	workers     int
	metrics     MetricsCollector
	logger      *Logger
}

func newEnv(o options) *env {
	e := &env{
		parser:      o.dateParser,
		compiler:    lookup.NewCompiler(o.pathCacheSize),
		codec:       o.codec,
		compression: o.compression,
		workers:     o.concurrency,
		metrics:     o.metricsCollector,
		logger:      o.logger,
	}
	e.setConfig(o.config)
	return e
}

var defaultEnv = sync.OnceValue(func() *env {
	return newEnv(applyOptions(nil))
})

func (e *env) setConfig(cfg Config) {
	e.config = cfg.normalized()
	e.matcher = lookup.NewMatcher(lookup.Comparator{
		Dates: datefmt.NewSet(e.parser, e.config.DateFormats),
	})
}

// withConfig returns a copy of e using cfg. The path cache is shared since
// compiled paths are keyed by separator.
func (e *env) withConfig(cfg Config) *env {
	next := *e
	next.setConfig(cfg)
	return &next
}

func (e *env) compile(expr string) lookup.Path {
	return e.compiler.Compile(expr, e.config.Separator)
}
