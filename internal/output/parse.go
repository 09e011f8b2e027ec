package output

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/atikulmunna/fauxlog/internal/model"
)

// lineRe matches one rendered line after ANSI stripping. Fields never
// contain spaces, and every column separator is at least two spaces wide.
var lineRe = regexp.MustCompile(
	`^(?P<timestamp>\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}Z)  (?P<level>[A-Z]+) {2,}(?P<host>\S+) {2,}(?P<service>\S+) {2,}(?P<message>\S.*)$`,
)

// ParseLine recovers the fields of a TextRenderer block. Color codes are
// stripped first; a trailing continuation line is accepted.
func ParseLine(s string) (model.LogEntry, error) {
	s = strings.TrimRight(Strip(s), "\n")
	first, cont, hasCont := strings.Cut(s, "\n")

	matches := lineRe.FindStringSubmatch(first)
	if matches == nil {
		return model.LogEntry{}, fmt.Errorf("line does not match layout: %q", first)
	}

	var (
		entry model.LogEntry
		known bool
	)
	for i, name := range lineRe.SubexpNames() {
		switch name {
		case "timestamp":
			entry.Timestamp = matches[i]
		case "level":
			entry.Level, known = model.ParseLevel(matches[i])
		case "host":
			entry.Host = matches[i]
		case "service":
			entry.Service = matches[i]
		case "message":
			entry.Message = matches[i]
		}
	}
	if !known {
		return entry, fmt.Errorf("unknown level %q", entry.Level)
	}

	if hasCont {
		if !strings.HasPrefix(cont, ContinuationIndent+"↳ ") {
			return entry, fmt.Errorf("malformed continuation line: %q", cont)
		}
		entry.Continuation = strings.TrimPrefix(cont, ContinuationIndent)
	}
	return entry, nil
}
