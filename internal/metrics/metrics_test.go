package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/haytac/readme-emoji-fix/internal/repair"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveFix(t *testing.T) {
	r := NewRecorder()
	pairs := []repair.Pair{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	r.ObserveFix(pairs, repair.Result{Counts: []int{2, 0, 1}})
	r.ObserveFix(pairs, repair.Result{Counts: []int{1, 0, 0}})

	assert.Equal(t, 3.0, testutil.ToFloat64(r.Replacements.WithLabelValues("a")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Replacements.WithLabelValues("c")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.Replacements))
}

func TestObserveCheckAndFinish(t *testing.T) {
	r := NewRecorder()
	r.ObserveCheck([]repair.Match{{Count: 2}, {Count: 0}, {Count: 3}})
	r.Finish("check", "pending")
	r.Finish("fix", "success")

	assert.Equal(t, 5.0, testutil.ToFloat64(r.Pending))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Runs.WithLabelValues("check", "pending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Runs.WithLabelValues("fix", "success")))
	assert.Greater(t, testutil.ToFloat64(r.LastSuccess), 0.0)
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Finish("fix", "success")
	path := filepath.Join(t.TempDir(), "readmefix.prom")

	require.NoError(t, r.WriteTextfile(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `readmefix_runs_total{command="fix",status="success"} 1`)

	require.NoError(t, r.WriteTextfile(""))
}
