package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics agrupa los colectores Prometheus del servicio sobre un registro propio.
// Estado de proceso con inicialización explícita: la lógica de inventario no depende
// de ningún registro global.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	MovementsTotal      *prometheus.CounterVec
}

// New crea y registra los colectores.
func New(appName string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		Registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total de peticiones HTTP por método, ruta y código de estado.",
			ConstLabels: prometheus.Labels{"app": appName},
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duración de las peticiones HTTP en segundos.",
			ConstLabels: prometheus.Labels{"app": appName},
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		MovementsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "stock_movements_total",
			Help:        "Movimientos de stock registrados por tipo y resultado.",
			ConstLabels: prometheus.Labels{"app": appName},
		}, []string{"type", "result"}),
	}
	reg.MustRegister(m.HTTPRequestsTotal, m.HTTPRequestDuration, m.MovementsTotal)
	return m
}
