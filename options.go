package queryset

import (
	"log/slog"

	"github.com/hupe1980/queryset/codec"
	"github.com/hupe1980/queryset/datefmt"
	"github.com/hupe1980/queryset/lookup"
)

type options struct {
	config           Config
	dateParser       datefmt.Parser
	codec            codec.Codec
	compression      codec.Compression
	pathCacheSize    int
	concurrency      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures QuerySet construction and Load.
type Option func(*options)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithSeparator sets the path separator.
func WithSeparator(sep string) Option {
	return func(o *options) {
		o.config.Separator = sep
	}
}

// WithDateFormats sets the formats tried when detecting dates.
// Moment-style tokens (DD/MM/YYYY) and Go layouts (02/01/2006) are both
// accepted.
func WithDateFormats(formats ...string) Option {
	return func(o *options) {
		o.config.DateFormats = append([]string{}, formats...)
	}
}

// WithDateParser configures the date collaborator.
// Pass nil to disable date-aware comparison entirely.
func WithDateParser(p datefmt.Parser) Option {
	return func(o *options) {
		o.dateParser = p
	}
}

// WithCodec configures the codec used by Load and Dump.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the compression used by Load and Dump.
func WithCompression(c codec.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithPathCacheSize sets how many compiled path expressions are memoized.
// A size <= 0 disables the cache.
func WithPathCacheSize(n int) Option {
	return func(o *options) {
		o.pathCacheSize = n
	}
}

// WithConcurrency sets how many goroutines Filter and Exclude use to scan
// large QuerySets. Values <= 1 scan sequentially. Results and their order
// do not depend on the setting.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &queryset.BasicMetricsCollector{}
//	qs := queryset.FromRecords(users, queryset.WithMetricsCollector(metrics))
//	qs.Filter(queryset.Query{"profile__active": true})
//	fmt.Println(metrics.GetStats().FilterCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := queryset.NewJSONLogger(slog.LevelDebug)
//	qs := queryset.FromRecords(users, queryset.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		config:           DefaultConfig(),
		dateParser:       datefmt.Std{},
		codec:            codec.Default,
		compression:      codec.CompressionNone,
		pathCacheSize:    lookup.DefaultCompilerSize,
		concurrency:      1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.codec == nil {
		o.codec = codec.Default
	}
	o.config = o.config.normalized()
	return o
}
