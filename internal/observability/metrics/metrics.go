package metrics

import "github.com/prometheus/client_golang/prometheus"

// AssistantMetrics exposes counters/histograms for the webhook pipeline.
// All observers are nil-receiver safe so wiring metrics stays optional.
type AssistantMetrics struct {
	inboundTotal  *prometheus.CounterVec
	intentsTotal  *prometheus.CounterVec
	outboundTotal *prometheus.CounterVec
	llmLatency    prometheus.Histogram
}

// NewAssistantMetrics registers the pipeline metrics on reg, or the default
// registerer when nil.
func NewAssistantMetrics(reg prometheus.Registerer) *AssistantMetrics {
	m := &AssistantMetrics{
		inboundTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smilecare",
			Subsystem: "webhook",
			Name:      "inbound_total",
			Help:      "Total inbound WhatsApp webhook messages",
		}, []string{"type", "status"}),
		intentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smilecare",
			Subsystem: "assistant",
			Name:      "intents_total",
			Help:      "Extracted intents by kind",
		}, []string{"intent"}),
		outboundTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smilecare",
			Subsystem: "whatsapp",
			Name:      "outbound_total",
			Help:      "Outbound WhatsApp sends",
		}, []string{"status"}),
		llmLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "smilecare",
			Subsystem: "assistant",
			Name:      "llm_latency_seconds",
			Help:      "Latency of Gemini completions",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.inboundTotal, m.intentsTotal, m.outboundTotal, m.llmLatency)
	return m
}

func (m *AssistantMetrics) ObserveInbound(msgType, status string) {
	if m == nil {
		return
	}
	m.inboundTotal.WithLabelValues(msgType, status).Inc()
}

func (m *AssistantMetrics) ObserveIntent(kind string) {
	if m == nil {
		return
	}
	m.intentsTotal.WithLabelValues(kind).Inc()
}

func (m *AssistantMetrics) ObserveOutbound(status string) {
	if m == nil {
		return
	}
	m.outboundTotal.WithLabelValues(status).Inc()
}

func (m *AssistantMetrics) ObserveLLMLatency(seconds float64) {
	if m == nil {
		return
	}
	m.llmLatency.Observe(seconds)
}
