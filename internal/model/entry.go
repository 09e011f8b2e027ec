package model

import "strings"

// Level is a synthetic log severity tag.
type Level string

const (
	LevelInfo     Level = "INFO"
	LevelWarn     Level = "WARN"
	LevelError    Level = "ERROR"
	LevelDebug    Level = "DEBUG"
	LevelCritical Level = "CRITICAL"
	LevelTrace    Level = "TRACE"
	LevelNotice   Level = "NOTICE"
)

// Levels is the fixed enumeration every generated line draws from, in draw order.
var Levels = []Level{LevelInfo, LevelWarn, LevelError, LevelDebug, LevelCritical, LevelTrace, LevelNotice}

// BenignLevels is the restricted set an alarming level is downgraded to.
var BenignLevels = []Level{LevelInfo, LevelWarn, LevelDebug}

// Valid reports whether l is one of the enumerated levels.
func (l Level) Valid() bool {
	for _, v := range Levels {
		if l == v {
			return true
		}
	}
	return false
}

// Alarming reports whether l is subject to the downgrade rule.
func (l Level) Alarming() bool {
	return l == LevelError || l == LevelCritical
}

// ParseLevel normalizes s and returns the matching level.
func ParseLevel(s string) (Level, bool) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	return l, l.Valid()
}

// Style identifies which message template produced a line.
type Style string

const (
	StyleComposite Style = "composite" // service/action/object/suffix
	StyleRequest   Style = "request"   // synthetic HTTP request line
	StyleFailure   Style = "failure"   // failure pattern with trace id
	StyleFragments Style = "fragments" // shuffled token soup
)

// LogEntry is one synthetic log event, built fresh per iteration.
type LogEntry struct {
	Timestamp    string `json:"timestamp"`
	Level        Level  `json:"level"`
	Host         string `json:"host"`
	Service      string `json:"service"`
	Message      string `json:"message"`
	Continuation string `json:"continuation,omitempty"` // indented follow-up line
	Style        Style  `json:"style"`
}
