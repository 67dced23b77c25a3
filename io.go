package queryset

import (
	"context"
	"io"
	"time"

	"github.com/hupe1980/queryset/record"
)

// Load reads a serialized array of values, typically records, and returns
// a QuerySet over them. The codec and compression must match the ones used
// by Dump.
//
//	qs, err := queryset.Load(f, queryset.WithCompression(codec.CompressionZSTD))
func Load(r io.Reader, opts ...Option) (*QuerySet, error) {
	start := time.Now()
	e := newEnv(applyOptions(opts))

	items, err := e.decode(r)
	e.metrics.RecordLoad(len(items), time.Since(start), err)
	e.logger.LogLoad(context.Background(), len(items), err)
	if err != nil {
		return nil, err
	}
	return &QuerySet{items: items, env: e}, nil
}

func (e *env) decode(r io.Reader) ([]record.Value, error) {
	fail := func(err error) error {
		return &ErrDecode{Codec: e.codec.Name(), Compression: e.compression.String(), cause: err}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fail(err)
	}
	data, err = e.compression.Decompress(data)
	if err != nil {
		return nil, fail(err)
	}

	var items []record.Value
	if err := e.codec.Unmarshal(data, &items); err != nil {
		return nil, fail(err)
	}
	return items, nil
}

// Dump writes the values of qs using the configured codec and
// compression.
func (qs *QuerySet) Dump(w io.Writer) error {
	e := qs.environment()
	fail := func(err error) error {
		e.logger.LogDump(context.Background(), len(qs.items), 0, err)
		return &ErrEncode{Codec: e.codec.Name(), Compression: e.compression.String(), cause: err}
	}

	items := qs.items
	if items == nil {
		items = []record.Value{}
	}
	data, err := e.codec.Marshal(items)
	if err != nil {
		return fail(err)
	}
	data, err = e.compression.Compress(data)
	if err != nil {
		return fail(err)
	}
	n, err := w.Write(data)
	if err != nil {
		return fail(err)
	}

	e.logger.LogDump(context.Background(), len(qs.items), n, nil)
	return nil
}
