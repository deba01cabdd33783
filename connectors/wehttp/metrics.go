package wehttp

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weegigs/wee-webapp-go/counter"
)

const metricsNamespace = "webapp"

type Metrics struct {
	registry *prometheus.Registry
	served   prometheus.Counter
	requests *prometheus.CounterVec
}

// NewMetrics registers the webapp collectors on a private registry. The counter gauge
// reads c on every scrape.
func NewMetrics(c counter.Counter) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		served: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "messages_served_total",
			Help:      "Number of message responses written",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests by status code and method",
		}, []string{"code", "method"}),
	}

	value := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "counter_value",
		Help:      "Current value of the message counter",
	}, func() float64 {
		v, err := c.Get(context.Background())
		if err != nil {
			return 0
		}
		return float64(v)
	})

	registry.MustRegister(m.served, m.requests, value)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) instrument(h http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(m.requests, h)
}

func (m *Metrics) messageServed() {
	m.served.Inc()
}
