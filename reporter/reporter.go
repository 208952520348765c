// Package reporter provides the diagnostics engine used by the lexer, the
// AST validator, and any later front-end stage. Diagnostics flow through an
// Engine, which counts them and forwards them to a pluggable Consumer.
//
// The engine is strictly sequential: callers report diagnostics one at a
// time from a single goroutine, so there is no internal locking.
package reporter

import (
	"fmt"

	"github.com/minicc/minicc/token"
)

// Level is the severity of a diagnostic.
type Level int8

const (
	// Note is informational and does not affect any count.
	Note Level = iota
	// Warning indicates suspicious but acceptable input.
	Warning
	// Error indicates invalid input; processing may continue.
	Error
	// Fatal indicates invalid input that prevents further processing of the
	// current construct. A fatal diagnostic latches Engine.FatalOccurred.
	Fatal
)

// String returns the level's lowercase name.
func (l Level) String() string {
	switch l {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal error"
	default:
		return fmt.Sprintf("level(%d)", int8(l))
	}
}

// Diagnostic is a single reported condition.
type Diagnostic struct {
	Level    Level
	Loc      token.Location
	Category string
	Message  string
}

func (d Diagnostic) String() string {
	if d.Category == "" {
		return fmt.Sprintf("%s: %s: %s", d.Loc, d.Level, d.Message)
	}
	return fmt.Sprintf("%s: %s: [%s] %s", d.Loc, d.Level, d.Category, d.Message)
}

// Consumer receives the diagnostics an Engine accepts.
type Consumer interface {
	Consume(Diagnostic)
}

// Engine accepts diagnostics, maintains error and warning counts, applies
// suppression, and forwards accepted diagnostics to its consumer.
type Engine struct {
	consumer Consumer

	errorCount   int
	warningCount int
	fatal        bool

	suppressErrors   bool
	suppressWarnings bool
}

// NewEngine returns an engine forwarding to c. A nil c discards accepted
// diagnostics but still counts them.
func NewEngine(c Consumer) *Engine {
	return &Engine{consumer: c}
}

// Report accepts d, unless its level is currently suppressed. Suppressed
// diagnostics are neither counted nor forwarded. Notes are forwarded but
// never counted; Fatal is never suppressed and counts as an error.
func (e *Engine) Report(d Diagnostic) {
	switch d.Level {
	case Warning:
		if e.suppressWarnings {
			return
		}
		e.warningCount++
	case Error:
		if e.suppressErrors {
			return
		}
		e.errorCount++
	case Fatal:
		e.errorCount++
		e.fatal = true
	}
	if e.consumer != nil {
		e.consumer.Consume(d)
	}
}

// Reportf formats a message and reports it at the given level.
func (e *Engine) Reportf(level Level, loc token.Location, category, format string, args ...any) {
	e.Report(Diagnostic{
		Level:    level,
		Loc:      loc,
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Notef reports a formatted note.
func (e *Engine) Notef(loc token.Location, category, format string, args ...any) {
	e.Reportf(Note, loc, category, format, args...)
}

// Warningf reports a formatted warning.
func (e *Engine) Warningf(loc token.Location, category, format string, args ...any) {
	e.Reportf(Warning, loc, category, format, args...)
}

// Errorf reports a formatted recoverable error.
func (e *Engine) Errorf(loc token.Location, category, format string, args ...any) {
	e.Reportf(Error, loc, category, format, args...)
}

// Fatalf reports a formatted fatal error.
func (e *Engine) Fatalf(loc token.Location, category, format string, args ...any) {
	e.Reportf(Fatal, loc, category, format, args...)
}

// ErrorCount returns the number of accepted errors, fatal included.
func (e *Engine) ErrorCount() int { return e.errorCount }

// WarningCount returns the number of accepted warnings.
func (e *Engine) WarningCount() int { return e.warningCount }

// HasErrors reports whether any error or fatal diagnostic was accepted.
func (e *Engine) HasErrors() bool { return e.errorCount > 0 }

// FatalOccurred reports whether a fatal diagnostic was accepted. It stays
// true until Reset.
func (e *Engine) FatalOccurred() bool { return e.fatal }

// SuppressErrors toggles suppression of Error-level diagnostics. Fatal
// diagnostics are never suppressed.
func (e *Engine) SuppressErrors(suppress bool) { e.suppressErrors = suppress }

// SuppressWarnings toggles suppression of Warning-level diagnostics.
func (e *Engine) SuppressWarnings(suppress bool) { e.suppressWarnings = suppress }

// Reset clears the counts and the fatal latch. Suppression settings and the
// consumer are kept.
func (e *Engine) Reset() {
	e.errorCount = 0
	e.warningCount = 0
	e.fatal = false
}

// Collector is a Consumer that accumulates every diagnostic it receives.
// Useful in tests and for deferred rendering.
type Collector struct {
	Diagnostics []Diagnostic
}

// Consume appends d.
func (c *Collector) Consume(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// ByLevel returns the collected diagnostics with the given level, in order.
func (c *Collector) ByLevel(level Level) []Diagnostic {
	var out []Diagnostic
	for _, d := range c.Diagnostics {
		if d.Level == level {
			out = append(out, d)
		}
	}
	return out
}
