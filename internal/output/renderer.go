package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/atikulmunna/fauxlog/internal/config"
	"github.com/atikulmunna/fauxlog/internal/model"
)

// Renderer writes LogEntry values to an output stream.
type Renderer interface {
	Render(entry model.LogEntry) error
}

// ContinuationIndent prefixes the optional second line of an entry.
const ContinuationIndent = "      "

// ---------------------------------------------------------------------------
// Text Renderer (colorized terminal output)
// ---------------------------------------------------------------------------

// TextRenderer prints entries in the fixed column layout, styled by Theme.
type TextRenderer struct {
	w      io.Writer
	theme  *Theme
	layout config.LayoutConfig
}

// NewTextRenderer returns a Renderer that writes styled text to w.
func NewTextRenderer(w io.Writer, theme *Theme, layout config.LayoutConfig) *TextRenderer {
	return &TextRenderer{w: w, theme: theme, layout: layout}
}

func (r *TextRenderer) Render(entry model.LogEntry) error {
	_, err := fmt.Fprintln(r.w, r.Format(entry))
	return err
}

// Format returns the entry as one line, plus the continuation line if any.
// Padding is applied before styling so columns line up with or without color.
func (r *TextRenderer) Format(entry model.LogEntry) string {
	var b strings.Builder
	b.WriteString(entry.Timestamp)
	b.WriteString("  ")
	b.WriteString(r.theme.Level(entry.Level, pad(string(entry.Level), r.layout.LevelWidth)))
	b.WriteString("  ")
	b.WriteString(r.theme.Dim(pad(entry.Host, r.layout.HostWidth)))
	b.WriteString("  ")
	b.WriteString(r.theme.Dim(pad(entry.Service, r.layout.ServiceWidth)))
	b.WriteString("  ")
	b.WriteString(entry.Message)
	if entry.Continuation != "" {
		b.WriteString("\n")
		b.WriteString(ContinuationIndent)
		b.WriteString(r.theme.Dim(entry.Continuation))
	}
	return b.String()
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints each entry as a single JSON object per line.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes JSON lines to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONRenderer{enc: enc}
}

func (r *JSONRenderer) Render(entry model.LogEntry) error {
	return r.enc.Encode(entry)
}
