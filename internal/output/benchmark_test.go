package output

import (
	"bytes"
	"io"
	"testing"

	"github.com/atikulmunna/fauxlog/internal/config"
)

// BenchmarkFormat measures text formatting throughput with the plain theme.
func BenchmarkFormat(b *testing.B) {
	var buf bytes.Buffer
	r := NewTextRenderer(io.Discard, NewTheme(NewLipglossRenderer(&buf, true)), config.Default().Layout)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Format(sample)
	}
}

// BenchmarkParseLine measures layout parsing throughput.
func BenchmarkParseLine(b *testing.B) {
	var buf bytes.Buffer
	line := plainRenderer(&buf).Format(sample)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = ParseLine(line)
	}
}
