package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserversIncrementCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAssistantMetrics(reg)

	m.ObserveInbound("text", "ok")
	m.ObserveInbound("text", "ok")
	m.ObserveInbound("audio", "duplicate")
	m.ObserveIntent("book_appointment")
	m.ObserveOutbound("ok")
	m.ObserveOutbound("error")
	m.ObserveLLMLatency(0.42)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.inboundTotal.WithLabelValues("text", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inboundTotal.WithLabelValues("audio", "duplicate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.intentsTotal.WithLabelValues("book_appointment")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.outboundTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.outboundTotal.WithLabelValues("error")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *AssistantMetrics

	// Must not panic when metrics are not wired.
	m.ObserveInbound("text", "ok")
	m.ObserveIntent("chat")
	m.ObserveOutbound("ok")
	m.ObserveLLMLatency(1.5)
}

func TestMetricsRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAssistantMetrics(reg)
	m.ObserveInbound("text", "ok")
	m.ObserveIntent("chat")
	m.ObserveOutbound("ok")
	m.ObserveLLMLatency(0.1)

	families, err := reg.Gather()
	assert.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"smilecare_webhook_inbound_total",
		"smilecare_assistant_intents_total",
		"smilecare_whatsapp_outbound_total",
		"smilecare_assistant_llm_latency_seconds",
	} {
		assert.True(t, names[want], "missing metric %s", want)
	}
}
