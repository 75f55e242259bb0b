package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "draw_guess"

// Metrics groups every collector exposed on /metrics.
// All methods are safe on a nil receiver so components can run without metrics.
type Metrics struct {
	registry       *prometheus.Registry
	activeRooms    prometheus.Gauge
	roomsCreated   prometheus.Counter
	roomsEvicted   prometheus.Counter
	transitions    *prometheus.CounterVec
	published      *prometheus.CounterVec
	activeSessions prometheus.Gauge
	droppedEvents  prometheus.Counter
	rejectedFrames prometheus.Counter
	workerRestarts *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		activeRooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_rooms",
			Help:      "Number of rooms currently held in memory.",
		}),
		roomsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_created_total",
			Help:      "Number of rooms created.",
		}),
		roomsEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_evicted_total",
			Help:      "Number of finished rooms evicted by the sweeper.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_transitions_total",
			Help:      "Number of room state transitions by target state.",
		}, []string{"state"}),
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Number of room events published on the bus by type.",
		}, []string{"type"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of connected websocket sessions.",
		}),
		droppedEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_events_dropped_total",
			Help:      "Number of events dropped because a session buffer was full.",
		}),
		rejectedFrames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_frames_rejected_total",
			Help:      "Number of inbound websocket frames rejected by the rate limiter.",
		}),
		workerRestarts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_restarts_total",
			Help:      "Number of supervised worker restarts by worker name.",
		}, []string{"worker"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.activeRooms, m.roomsCreated, m.roomsEvicted, m.transitions,
		m.published, m.activeSessions, m.droppedEvents, m.rejectedFrames, m.workerRestarts,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RoomCreated() {
	if m == nil {
		return
	}
	m.roomsCreated.Inc()
	m.activeRooms.Inc()
}

func (m *Metrics) RoomsEvicted(n int) {
	if m == nil {
		return
	}
	m.roomsEvicted.Add(float64(n))
	m.activeRooms.Sub(float64(n))
}

func (m *Metrics) StateTransition(state string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(state).Inc()
}

func (m *Metrics) EventPublished(eventType string) {
	if m == nil {
		return
	}
	m.published.WithLabelValues(eventType).Inc()
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

func (m *Metrics) EventDropped() {
	if m == nil {
		return
	}
	m.droppedEvents.Inc()
}

func (m *Metrics) FrameRejected() {
	if m == nil {
		return
	}
	m.rejectedFrames.Inc()
}

func (m *Metrics) WorkerRestarted(worker string) {
	if m == nil {
		return
	}
	m.workerRestarts.WithLabelValues(worker).Inc()
}
