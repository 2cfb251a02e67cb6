// Package diag collects the non-fatal anomalies found while synthesizing
// descriptors. Every diagnostic is also written to the run's logger.
package diag

import (
	"fmt"

	"github.com/go-logr/logr"
)

// Severity ranks a diagnostic.
type Severity int

const (
	// Info marks structural absences: data that was skipped by policy.
	Info Severity = iota
	// Warning marks malformed literals and unresolved relationships.
	Warning
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Diagnostic is one reported anomaly.
type Diagnostic struct {
	Severity Severity
	Subject  string // instance or resource the message is about
	Message  string
}

func (d Diagnostic) String() string {
	if d.Subject == "" {
		return d.Message
	}
	return d.Subject + ": " + d.Message
}

// Reporter accumulates diagnostics for a single run. It is not safe for
// concurrent use; each run owns its own reporter.
type Reporter struct {
	log   logr.Logger
	items []Diagnostic
}

// NewReporter returns a reporter that logs through log.
func NewReporter(log logr.Logger) *Reporter {
	return &Reporter{log: log}
}

// Discard returns a reporter that records diagnostics but logs nothing.
func Discard() *Reporter {
	return NewReporter(logr.Discard())
}

// Logger returns the underlying logger.
func (r *Reporter) Logger() logr.Logger {
	return r.log
}

// Infof records an informational diagnostic.
func (r *Reporter) Infof(subject, format string, args ...any) {
	d := Diagnostic{Severity: Info, Subject: subject, Message: fmt.Sprintf(format, args...)}
	r.items = append(r.items, d)
	r.log.V(1).Info(d.Message, "subject", subject)
}

// Warnf records a warning.
func (r *Reporter) Warnf(subject, format string, args ...any) {
	d := Diagnostic{Severity: Warning, Subject: subject, Message: fmt.Sprintf(format, args...)}
	r.items = append(r.items, d)
	r.log.Info(d.Message, "subject", subject, "severity", d.Severity.String())
}

// Diagnostics returns everything recorded so far, in order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.items
}

// Warnings returns only the warnings.
func (r *Reporter) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.items {
		if d.Severity == Warning {
			out = append(out, d)
		}
	}
	return out
}
