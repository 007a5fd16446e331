package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counts(t *testing.T) {
	r := New()

	r.Candidate("link")
	r.Candidate("link")
	r.Candidate("fallback")
	r.Probe("ok", 20*time.Millisecond)
	r.Probe("fetch_error", 0)

	assert.InDelta(t, 2, testutil.ToFloat64(r.candidates.WithLabelValues("link")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.candidates.WithLabelValues("fallback")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.probes.WithLabelValues("ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.probes.WithLabelValues("fetch_error")), 0)

	mfs, err := r.Registry().Gather()
	require.NoError(t, err)
	var samples uint64
	for _, mf := range mfs {
		if mf.GetName() == "siteicons_probe_duration_seconds" {
			samples = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(1), samples)
}

func TestRecorder_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.Probe("ok", time.Millisecond)

	assert.InDelta(t, 0, testutil.ToFloat64(b.probes.WithLabelValues("ok")), 0)
}

func TestRecorder_WriteFile(t *testing.T) {
	r := New()
	r.Probe("truncated_data", 5*time.Millisecond)

	path := filepath.Join(t.TempDir(), "siteicons.prom")
	require.NoError(t, r.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `siteicons_probes_total{outcome="truncated_data"} 1`), string(data))
}
