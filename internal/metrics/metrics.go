package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uniformes_http_requests_total",
		Help: "HTTP requests served, by method, route and status code.",
	},
		[]string{"method", "route", "status"},
	)

	EntregasTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uniformes_entregas_total",
		Help: "Uniform deliveries persisted.",
	})

	ActasFallidasTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uniformes_actas_fallidas_total",
		Help: "Delivery receipts that could not be rendered.",
	})

	EnviosLavanderiaTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uniformes_envios_lavanderia_total",
		Help: "Laundry shipments opened.",
	})

	DevolucionesLavanderiaTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uniformes_devoluciones_lavanderia_total",
		Help: "Laundry returns recorded.",
	})

	DevolucionesUniformeTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uniformes_devoluciones_uniforme_total",
		Help: "Uniform returns recorded.",
	})

	RegistrosOmitidosTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uniformes_registros_omitidos_total",
		Help: "Stored records skipped because their item list could not be read.",
	},
		[]string{"operation"},
	)
)
