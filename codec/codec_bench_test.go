package codec

import (
	"testing"

	"github.com/hupe1980/queryset/record"
)

func benchRecords(n int) []record.Record {
	out := make([]record.Record, n)
	for i := range out {
		out[i] = record.Record{
			"id":     record.Int(int64(i)),
			"name":   record.String("user"),
			"score":  record.Float(0.125 * float64(i)),
			"active": record.Bool(i%2 == 0),
			"tags":   record.Array([]record.Value{record.String("a"), record.String("b")}),
			"profile": record.Object(record.Record{
				"locale": record.String("en"),
				"age":    record.Int(int64(20 + i%50)),
			}),
		}
	}
	return out
}

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func BenchmarkCodec_Marshal_Records(b *testing.B) {
	recs := benchRecords(256)

	b.Run("stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, recs) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, recs) })
}

func BenchmarkCodec_Unmarshal_Records(b *testing.B) {
	data := MustMarshal(JSON{}, benchRecords(256))

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				var out []record.Record
				if err := c.Unmarshal(data, &out); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCompression(b *testing.B) {
	data := MustMarshal(nil, benchRecords(1024))

	for _, c := range []Compression{CompressionZSTD, CompressionLZ4} {
		b.Run(c.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				if _, err := c.Compress(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
