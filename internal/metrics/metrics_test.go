package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderObserveRecompute(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.ObserveRecompute("tick", 2*time.Millisecond, []int{84, 84, 80, 84})
	r.ObserveRecompute("tick", time.Millisecond, []int{84, 84, 84, 84})
	r.ObserveRecompute("session_state", time.Millisecond, []int{0, 0, 0, 0})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.recomputes.WithLabelValues("tick")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.recomputes.WithLabelValues("session_state")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.lines.WithLabelValues("2")))
	assert.Equal(t, uint64(3), r.Total())
	assert.Equal(t, time.Millisecond, r.Last())

	expected := `
# HELP aggroarea_lines Number of published render lines per plane.
# TYPE aggroarea_lines gauge
aggroarea_lines{plane="0"} 0
aggroarea_lines{plane="1"} 0
aggroarea_lines{plane="2"} 0
aggroarea_lines{plane="3"} 0
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "aggroarea_lines"))
}

func TestNewRecorderRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)
	_, err = NewRecorder(reg)
	assert.Error(t, err)
}
