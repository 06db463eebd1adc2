package whatsapp

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/smilecare/whatsapp-assistant/pkg/logging"
)

// WebhookHandler handles Meta webhook verification and inbound messages.
type WebhookHandler struct {
	verifyToken string
	appSecret   string
	onMessage   func(msg ParsedInboundMessage)
	logger      *logging.Logger
}

// NewWebhookHandler creates a new webhook handler. onMessage is called once
// per parsed inbound message. An empty appSecret disables signature checks.
func NewWebhookHandler(verifyToken, appSecret string, onMessage func(ParsedInboundMessage), logger *logging.Logger) *WebhookHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &WebhookHandler{
		verifyToken: verifyToken,
		appSecret:   appSecret,
		onMessage:   onMessage,
		logger:      logger,
	}
}

// HandleVerification handles the GET webhook subscription challenge from Meta.
func (h *WebhookHandler) HandleVerification(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("hub.mode")
	token := r.URL.Query().Get("hub.verify_token")
	challenge := r.URL.Query().Get("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		h.logger.Info("webhook verified")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, challenge)
		return
	}

	http.Error(w, "Forbidden", http.StatusForbidden)
}

// HandleInbound handles POST webhook deliveries. Meta expects a fast 200-class
// response independent of processing success, so malformed payloads are still
// acknowledged; only a failed signature check is rejected.
func (h *WebhookHandler) HandleInbound(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("webhook body read failed", "error", err)
		writeAck(w)
		return
	}

	if h.appSecret != "" {
		signature := r.Header.Get("X-Hub-Signature-256")
		if !VerifySignature(h.appSecret, body, signature) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
	}

	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.logger.Warn("webhook payload not parseable", "error", err)
		writeAck(w)
		return
	}

	writeAck(w)

	for _, msg := range ParseWebhookEvent(event) {
		if h.onMessage != nil {
			h.onMessage(msg)
		}
	}
}

func writeAck(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// ParseWebhookEvent extracts inbound text and audio messages from a Cloud API
// delivery. Status receipts and unsupported message types are skipped.
func ParseWebhookEvent(event WebhookEvent) []ParsedInboundMessage {
	var messages []ParsedInboundMessage

	for _, entry := range event.Entry {
		for _, change := range entry.Changes {
			if change.Field != "" && change.Field != "messages" {
				continue
			}
			for _, m := range change.Value.Messages {
				if m.From == "" {
					continue
				}

				parsed := ParsedInboundMessage{
					SenderID:  m.From,
					MessageID: m.ID,
					Type:      m.Type,
				}

				switch m.Type {
				case MessageTypeText:
					if m.Text == nil {
						continue
					}
					parsed.Text = m.Text.Body
				case MessageTypeAudio:
					if m.Audio == nil {
						continue
					}
					parsed.MediaID = m.Audio.ID
				default:
					continue
				}

				messages = append(messages, parsed)
			}
		}
	}

	return messages
}

// VerifySignature verifies the X-Hub-Signature-256 header.
func VerifySignature(appSecret string, body []byte, signature string) bool {
	if appSecret == "" || signature == "" {
		return false
	}

	// Signature format: "sha256=<hex>"
	const prefix = "sha256="
	sigHex, ok := strings.CutPrefix(signature, prefix)
	if !ok || sigHex == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(sigHex))
}
