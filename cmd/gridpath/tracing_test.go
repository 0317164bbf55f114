package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/search"
)

func TestSetupTracingWritesSpans(t *testing.T) {
	var buf bytes.Buffer
	tp, stop, err := setupTracing(&buf)
	require.NoError(t, err)

	metrics.NewTracer(tp).ObserveSearch("jps", search.Result{Found: true, Expanded: 3}, nil, time.Millisecond)
	stop()

	out := buf.String()
	assert.Contains(t, out, "gridpath.FindPath")
	assert.Contains(t, out, `"jps"`)
}
