package build

import (
	"fmt"
	"log/slog"
	"sync"
)

// Diagnostic describes a configuration key that was not applied.
type Diagnostic struct {
	Tag string
	Key string
}

// String returns a human-readable message.
func (d Diagnostic) String() string {
	return fmt.Sprintf("no action performed for new %q element with key %q", d.Tag, d.Key)
}

// Reporter receives diagnostics. Implementations must not block.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Diagnostic)

// Report implements Reporter.
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Reporter = ReporterFunc(func(Diagnostic) {})

// LogReporter writes diagnostics as info records.
type LogReporter struct {
	Logger *slog.Logger
}

// NewLogReporter returns a reporter writing to logger, or to the default
// logger when logger is nil.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{Logger: logger}
}

// Report implements Reporter.
func (r *LogReporter) Report(d Diagnostic) {
	r.Logger.Info("unrecognized element key", "tag", d.Tag, "key", d.Key)
}

// Collector keeps every diagnostic in memory. It is safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// Report implements Reporter.
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.diags = append(c.diags, d)
	c.mu.Unlock()
}

// Diagnostics returns a copy of the collected diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Diagnostic(nil), c.diags...)
}

// Reset drops the collected diagnostics.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.diags = nil
	c.mu.Unlock()
}

// Tee forwards every diagnostic to each reporter in order.
func Tee(reporters ...Reporter) Reporter {
	return ReporterFunc(func(d Diagnostic) {
		for _, r := range reporters {
			if r != nil {
				r.Report(d)
			}
		}
	})
}
