package diag

import (
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 0})

	r := NewReporter(log)
	r.Infof("p1_pod", "no deployment_name, skipped")
	r.Warnf("p2_pod", "replicas %q is not a positive integer", "x")

	require.Len(t, r.Diagnostics(), 2)
	assert.Equal(t, Info, r.Diagnostics()[0].Severity)
	assert.Equal(t, "p1_pod: no deployment_name, skipped", r.Diagnostics()[0].String())

	warnings := r.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, `replicas "x" is not a positive integer`, warnings[0].Message)

	// Info diagnostics are logged at V(1) and filtered out at verbosity 0.
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "p2_pod")
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "severity(7)", Severity(7).String())
}

func TestDiscard(t *testing.T) {
	r := Discard()
	r.Warnf("", "no subject")
	assert.Equal(t, "no subject", r.Diagnostics()[0].String())
}
