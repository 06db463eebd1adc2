package assistant

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/smilecare/whatsapp-assistant/internal/observability/metrics"
	"github.com/smilecare/whatsapp-assistant/pkg/logging"
)

// Action values the prompt contracts Gemini to emit.
const (
	actionBook = "book_appointment"
	actionList = "list_appointments"
	actionChat = "chat"
)

// Extractor turns an inbound message into a normalized Intent, repairing
// wrapped or malformed model output instead of failing.
type Extractor struct {
	llm     LLMClient
	prompt  string
	metrics *metrics.AssistantMetrics
	logger  *logging.Logger
}

// NewExtractor creates an extractor bound to the given model collaborator.
func NewExtractor(llm LLMClient, m *metrics.AssistantMetrics, logger *logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.Default()
	}
	return &Extractor{llm: llm, prompt: systemPrompt, metrics: m, logger: logger}
}

// Extract invokes the model once and maps its output to an Intent. Model
// failures and unparseable output degrade to a Chat intent; they never
// propagate to the caller.
func (e *Extractor) Extract(ctx context.Context, parts []Part) Intent {
	start := time.Now()
	raw, err := e.llm.Complete(ctx, e.prompt, parts)
	e.metrics.ObserveLLMLatency(time.Since(start).Seconds())
	if err != nil {
		e.logger.Error("model completion failed", "error", err)
		return Chat{Reply: replyModelDown}
	}

	cleaned := stripCodeFence(raw)

	var record map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &record); err != nil {
		// The model replied in prose. Relay it instead of discarding.
		e.logger.Warn("model output not valid JSON, relaying as chat", "raw", raw)
		return Chat{Reply: fallbackText(raw)}
	}
	rawAction, ok := record["action"]
	if !ok {
		return Chat{Reply: fallbackText(raw)}
	}

	var action string
	_ = json.Unmarshal(rawAction, &action) // null or non-string stays ""

	switch action {
	case actionBook:
		return BookAppointment{
			Name: stringField(record, "name"),
			Date: stringField(record, "date"),
		}
	case actionList:
		return ListAppointments{}
	case actionChat:
		return Chat{Reply: responseOrClarify(record)}
	default:
		return Unknown{Reply: responseOrClarify(record)}
	}
}

func stringField(record map[string]json.RawMessage, key string) string {
	var s string
	if raw, ok := record[key]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

func responseOrClarify(record map[string]json.RawMessage) string {
	if s := strings.TrimSpace(stringField(record, "response")); s != "" {
		return s
	}
	return replyClarify
}

func fallbackText(raw string) string {
	if s := strings.TrimSpace(raw); s != "" {
		return s
	}
	return replyClarify
}

// stripCodeFence removes one optional leading/trailing triple-backtick fence,
// with a case-insensitive "json" tag, plus surrounding whitespace.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = s[3:]
		if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
			s = s[4:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
