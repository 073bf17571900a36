package components

import (
	"fmt"
	"sync"
)

// Reporter receives warning-level render diagnostics. *logger.Logger
// satisfies it.
type Reporter interface {
	Warn(msg string)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(msg string)

// Warn implements Reporter.
func (f ReporterFunc) Warn(msg string) {
	f(msg)
}

type nopReporter struct{}

func (nopReporter) Warn(string) {}

// RecordingReporter keeps every diagnostic it receives.
type RecordingReporter struct {
	mu       sync.Mutex
	messages []string
}

// Warn implements Reporter.
func (r *RecordingReporter) Warn(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

// Messages returns a copy of the recorded diagnostics.
func (r *RecordingReporter) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

// Reset discards recorded diagnostics.
func (r *RecordingReporter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}

// PropNotAllowed formats the diagnostic for a rejected prop.
func PropNotAllowed(component, prop string) string {
	return fmt.Sprintf("[%s] prop '%s' is not allowed.", component, prop)
}

// PropInvalidValue formats the diagnostic for an allowed prop whose value
// cannot be applied.
func PropInvalidValue(component, prop string, value any) string {
	return fmt.Sprintf("[%s] prop '%s' has invalid value '%v'.", component, prop, value)
}
