package assistant

import (
	"context"

	"github.com/smilecare/whatsapp-assistant/internal/channels/whatsapp"
	"github.com/smilecare/whatsapp-assistant/internal/observability/metrics"
	"github.com/smilecare/whatsapp-assistant/pkg/logging"
)

// Sender delivers the reply back to the original sender.
type Sender interface {
	SendTextMessage(ctx context.Context, to, text string) error
}

// MediaFetcher resolves a WhatsApp media id into raw bytes and a MIME type.
type MediaFetcher interface {
	FetchMedia(ctx context.Context, mediaID string) ([]byte, string, error)
}

// DedupeStore marks webhook deliveries as seen so Meta redeliveries are
// processed once.
type DedupeStore interface {
	Seen(ctx context.Context, messageID string) (bool, error)
}

// Service runs the full pipeline for one inbound message: media fetch, intent
// extraction, dispatch, outbound reply. It holds no mutable state of its own,
// so concurrent deliveries are safe.
type Service struct {
	extractor  *Extractor
	dispatcher *Dispatcher
	sender     Sender
	media      MediaFetcher
	dedupe     DedupeStore
	metrics    *metrics.AssistantMetrics
	logger     *logging.Logger
}

// NewService wires the pipeline. dedupe and metrics may be nil.
func NewService(extractor *Extractor, dispatcher *Dispatcher, sender Sender, media MediaFetcher, dedupe DedupeStore, m *metrics.AssistantMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		extractor:  extractor,
		dispatcher: dispatcher,
		sender:     sender,
		media:      media,
		dedupe:     dedupe,
		metrics:    m,
		logger:     logger,
	}
}

// HandleMessage processes one parsed inbound message end to end. Exactly one
// reply is sent, unless the delivery is a duplicate.
func (s *Service) HandleMessage(ctx context.Context, msg whatsapp.ParsedInboundMessage) {
	s.metrics.ObserveInbound(msg.Type, "received")

	if s.dedupe != nil && msg.MessageID != "" {
		seen, err := s.dedupe.Seen(ctx, msg.MessageID)
		if err != nil {
			s.logger.Warn("dedupe check failed", "error", err, "message_id", msg.MessageID)
		} else if seen {
			s.metrics.ObserveInbound(msg.Type, "duplicate")
			s.logger.Info("duplicate delivery skipped", "message_id", msg.MessageID)
			return
		}
	}

	reply := s.replyFor(ctx, msg)

	if err := s.sender.SendTextMessage(ctx, msg.SenderID, reply); err != nil {
		s.metrics.ObserveOutbound("error")
		s.logger.Error("send reply failed", "error", err, "recipient", msg.SenderID)
		return
	}
	s.metrics.ObserveOutbound("ok")
}

func (s *Service) replyFor(ctx context.Context, msg whatsapp.ParsedInboundMessage) string {
	var parts []Part
	switch msg.Type {
	case whatsapp.MessageTypeAudio:
		data, mimeType, err := s.media.FetchMedia(ctx, msg.MediaID)
		if err != nil {
			s.logger.Error("media fetch failed", "error", err, "media_id", msg.MediaID)
			return replyMediaError
		}
		parts = []Part{BlobPart(data, mimeType)}
	default:
		parts = []Part{TextPart(msg.Text)}
	}

	intent := s.extractor.Extract(ctx, parts)
	s.metrics.ObserveIntent(intentKind(intent))
	return s.dispatcher.Dispatch(ctx, intent)
}

func intentKind(in Intent) string {
	switch in.(type) {
	case BookAppointment:
		return actionBook
	case ListAppointments:
		return actionList
	case Chat:
		return actionChat
	default:
		return "unknown"
	}
}
