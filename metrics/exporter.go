// Package metrics exposes the annealing engine's live progress as
// Prometheus gauges and counters, adapted from the teacher's Prometheus
// query client (pkg/monitoring/prometheus) into an exporter: the SA
// engine is a metrics producer here, not a consumer of someone else's
// Prometheus server.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exporter holds every gauge/counter the annealing engine reports to and
// the HTTP server that serves them.
type Exporter struct {
	registry *prometheus.Registry
	server   *http.Server

	Temperature prometheus.Gauge
	AvgCost     prometheus.Gauge
	BestCost    prometheus.Gauge
	FitRatio    prometheus.Gauge
	Phase       *prometheus.GaugeVec
	StepsTotal  prometheus.Counter
	AcceptTotal prometheus.Counter
	FitTotal    prometheus.Counter
}

// New builds an Exporter with its own registry, so a library consumer
// embedding this package never collides with prometheus.DefaultRegisterer.
func New() *Exporter {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	const ns = "corblivar"

	return &Exporter{
		registry: reg,
		Temperature: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Name: "temperature", Help: "Current simulated-annealing temperature.",
		}),
		AvgCost: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Name: "avg_cost", Help: "Average accepted cost in the current temperature step.",
		}),
		BestCost: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Name: "best_cost", Help: "Best fitting-layout cost found so far.",
		}),
		FitRatio: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Name: "fit_ratio", Help: "Fraction of accepted moves in the current step that fit the outline.",
		}),
		Phase: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns, Name: "phase", Help: "1 if the engine is currently in the named phase, else 0.",
		}, []string{"phase"}),
		StepsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Name: "steps_total", Help: "Total outer temperature steps run.",
		}),
		AcceptTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Name: "accepted_moves_total", Help: "Total accepted CBL mutations.",
		}),
		FitTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Name: "fitting_moves_total", Help: "Total accepted moves whose layout fit the outline.",
		}),
	}
}

// ObserveStep records one anneal.TempStep's worth of progress.
func (e *Exporter) ObserveStep(phase string, temp, avgCost, bestCost, fitRatio float64, accepted, fitting int) {
	e.Temperature.Set(temp)
	e.AvgCost.Set(avgCost)
	e.BestCost.Set(bestCost)
	e.FitRatio.Set(fitRatio)
	e.StepsTotal.Inc()
	e.AcceptTotal.Add(float64(accepted))
	e.FitTotal.Add(float64(fitting))

	for _, p := range []string{"PHASE_1", "PHASE_2", "PHASE_3"} {
		v := 0.0
		if p == phase {
			v = 1.0
		}
		e.Phase.WithLabelValues(p).Set(v)
	}
}

// Serve starts an HTTP server exposing /metrics on addr. It blocks until
// the server stops; callers typically run it in its own goroutine and
// call Shutdown to stop it.
func (e *Exporter) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{}))

	e.server = &http.Server{Addr: addr, Handler: mux}

	if err := e.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("metrics: serve %q: %w", addr, err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server started by Serve.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e.server == nil {
		return nil
	}
	return e.server.Shutdown(ctx)
}
