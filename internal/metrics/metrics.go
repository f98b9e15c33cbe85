// Package metrics exports recomputation statistics to prometheus.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "aggroarea"

// Recorder implements aggro.Metrics.
type Recorder struct {
	recomputes *prometheus.CounterVec
	duration   prometheus.Histogram
	lines      *prometheus.GaugeVec

	total atomic.Uint64
	last  atomic.Int64
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		recomputes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recomputes_total",
			Help:      "Number of aggro line recomputations by trigger.",
		}, []string{"trigger"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recompute_duration_seconds",
			Help:      "Time spent recomputing aggro lines.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
		lines: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lines",
			Help:      "Number of published render lines per plane.",
		}, []string{"plane"}),
	}
	for _, c := range []prometheus.Collector{r.recomputes, r.duration, r.lines} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return r, nil
}

// ObserveRecompute records one recomputation.
func (r *Recorder) ObserveRecompute(trigger string, elapsed time.Duration, perPlane []int) {
	r.recomputes.WithLabelValues(trigger).Inc()
	r.duration.Observe(elapsed.Seconds())
	for plane, n := range perPlane {
		r.lines.WithLabelValues(strconv.Itoa(plane)).Set(float64(n))
	}
	r.total.Add(1)
	r.last.Store(int64(elapsed))
}

// Total returns the number of recomputations recorded so far.
func (r *Recorder) Total() uint64 {
	return r.total.Load()
}

// Last returns the duration of the most recent recomputation.
func (r *Recorder) Last() time.Duration {
	return time.Duration(r.last.Load())
}

// Serve exposes the gatherer on addr under /metrics until ctx is done.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving metrics", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
