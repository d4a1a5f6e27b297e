package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	AvailabilityLoadsTotal     *prometheus.CounterVec
	AvailabilityFallbacksTotal *prometheus.CounterVec
	ReservationsTotal          *prometheus.CounterVec
	ActiveSessions             prometheus.Gauge
}

// New создает и регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
// В тестах используется отдельный prometheus.NewRegistry(), чтобы избежать повторной регистрации
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AvailabilityLoadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "availability_loads_total",
				Help:        "Availability loads by source",
				ConstLabels: constLabels,
			},
			[]string{"source"},
		),
		AvailabilityFallbacksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "availability_fallbacks_total",
				Help:        "Availability loads that degraded to the placeholder interval",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
		ReservationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "reservations_total",
				Help:        "Reservations written to session ledgers",
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		ActiveSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "booking_sessions_active",
				Help:        "Number of booking sessions held in memory",
				ConstLabels: constLabels,
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AvailabilityLoadsTotal,
		m.AvailabilityFallbacksTotal,
		m.ReservationsTotal,
		m.ActiveSessions,
	)

	return m
}

// ObserveAvailabilityLoad учитывает загрузку недоступных дат
func (m *Metrics) ObserveAvailabilityLoad(source string) {
	m.AvailabilityLoadsTotal.WithLabelValues(source).Inc()
}

// ObserveAvailabilityFallback учитывает подстановку заглушки
func (m *Metrics) ObserveAvailabilityFallback(reason string) {
	m.AvailabilityFallbacksTotal.WithLabelValues(reason).Inc()
}

// ObserveReservation учитывает запись в ledger (create/update)
func (m *Metrics) ObserveReservation(operation string) {
	m.ReservationsTotal.WithLabelValues(operation).Inc()
}

// SetActiveSessions выставляет текущее количество сессий
func (m *Metrics) SetActiveSessions(n int) {
	m.ActiveSessions.Set(float64(n))
}
