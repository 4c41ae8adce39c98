// Package metrics exposes the estimator and sampler's live progress as
// Prometheus gauges, wired through estimator.Recorder rather than a
// direct import so estimator stays free of any particular metrics
// backend — an optional-instrumentation idiom of exposing a narrow
// interface rather than a concrete client.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements estimator.Recorder against a set of Prometheus
// gauges. Register it with a prometheus.Registerer (or the default
// registry) before wiring it into an estimator run.
type Collector struct {
	theta          *prometheus.GaugeVec
	dzaNorm        prometheus.Gauge
	acceptanceRate prometheus.Gauge
	outerStep      prometheus.Gauge
}

// NewCollector creates the four gauges: ergmcore_theta (one series per
// statistic index), ergmcore_dza_norm, ergmcore_acceptance_rate,
// ergmcore_outer_step.
func NewCollector() *Collector {
	return &Collector{
		theta: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ergmcore_theta",
			Help: "Current theta component value, labeled by statistic index.",
		}, []string{"component"}),
		dzaNorm: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ergmcore_dza_norm",
			Help: "Euclidean norm of the most recent dzA vector.",
		}),
		acceptanceRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ergmcore_acceptance_rate",
			Help: "Sampler acceptance rate over the most recent outer iteration.",
		}),
		outerStep: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ergmcore_outer_step",
			Help: "Index of the most recently completed outer iteration.",
		}),
	}
}

// Register adds every gauge to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, coll := range []prometheus.Collector{c.theta, c.dzaNorm, c.acceptanceRate, c.outerStep} {
		if err := reg.Register(coll); err != nil {
			return err
		}
	}
	return nil
}

// ObserveTheta implements estimator.Recorder.
func (c *Collector) ObserveTheta(theta []float64) {
	for k, v := range theta {
		c.theta.WithLabelValues(fmt.Sprintf("%d", k)).Set(v)
	}
}

// ObserveDzANorm implements estimator.Recorder.
func (c *Collector) ObserveDzANorm(norm float64) { c.dzaNorm.Set(norm) }

// ObserveAcceptanceRate implements estimator.Recorder.
func (c *Collector) ObserveAcceptanceRate(rate float64) { c.acceptanceRate.Set(rate) }

// ObserveOuterStep implements estimator.Recorder.
func (c *Collector) ObserveOuterStep(step int) { c.outerStep.Set(float64(step)) }
