package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilecare/whatsapp-assistant/internal/channels/whatsapp"
)

type stubSender struct {
	sent []sentMessage
	err  error
}

type sentMessage struct {
	to   string
	text string
}

func (s *stubSender) SendTextMessage(_ context.Context, to, text string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMessage{to: to, text: text})
	return nil
}

type stubFetcher struct {
	data  []byte
	mime  string
	err   error
	calls int
}

func (f *stubFetcher) FetchMedia(_ context.Context, _ string) ([]byte, string, error) {
	f.calls++
	return f.data, f.mime, f.err
}

type mapDedupe struct {
	seen map[string]bool
}

func (d *mapDedupe) Seen(_ context.Context, id string) (bool, error) {
	if d.seen[id] {
		return true, nil
	}
	d.seen[id] = true
	return false, nil
}

func newTestService(llm *stubLLM, store *stubStore, sender *stubSender, fetcher *stubFetcher, dedupe DedupeStore) *Service {
	extractor := NewExtractor(llm, nil, nil)
	dispatcher := NewDispatcher(store, nil)
	dispatcher.now = func() time.Time {
		return time.Date(2025, 7, 20, 9, 0, 0, 0, time.UTC)
	}
	return NewService(extractor, dispatcher, sender, fetcher, dedupe, nil, nil)
}

func TestHandleMessageBookingScenario(t *testing.T) {
	llm := &stubLLM{response: `{"action":"book_appointment","name":"محمد","date":"2025-08-01"}`}
	store := &stubStore{}
	sender := &stubSender{}
	svc := newTestService(llm, store, sender, &stubFetcher{}, nil)

	svc.HandleMessage(context.Background(), whatsapp.ParsedInboundMessage{
		SenderID:  "201001234567",
		MessageID: "wamid.1",
		Type:      whatsapp.MessageTypeText,
		Text:      "حجز لي موعد باسم محمد في 2025-08-01",
	})

	require.Len(t, store.created, 1)
	assert.Equal(t, "محمد", store.created[0].Name)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "201001234567", sender.sent[0].to)
	assert.Contains(t, sender.sent[0].text, "محمد")
	assert.Contains(t, sender.sent[0].text, "2025-08-01")
}

func TestHandleMessageChatScenario(t *testing.T) {
	llm := &stubLLM{response: `{"action":"chat","response":"تحت أمرك!"}`}
	store := &stubStore{}
	sender := &stubSender{}
	svc := newTestService(llm, store, sender, &stubFetcher{}, nil)

	svc.HandleMessage(context.Background(), whatsapp.ParsedInboundMessage{
		SenderID:  "201001234567",
		MessageID: "wamid.2",
		Type:      whatsapp.MessageTypeText,
		Text:      "thanks",
	})

	assert.Empty(t, store.created, "chat must not touch the store")
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "تحت أمرك!", sender.sent[0].text)
}

func TestHandleMessageAudioFetchesMedia(t *testing.T) {
	llm := &stubLLM{response: `{"action":"list_appointments"}`}
	fetcher := &stubFetcher{data: []byte("OggS..."), mime: "audio/ogg"}
	sender := &stubSender{}
	svc := newTestService(llm, &stubStore{}, sender, fetcher, nil)

	svc.HandleMessage(context.Background(), whatsapp.ParsedInboundMessage{
		SenderID:  "201001234567",
		MessageID: "wamid.3",
		Type:      whatsapp.MessageTypeAudio,
		MediaID:   "media-42",
	})

	assert.Equal(t, 1, fetcher.calls)
	require.Len(t, llm.gotParts, 1)
	assert.Equal(t, []byte("OggS..."), llm.gotParts[0].Data)
	assert.Equal(t, "audio/ogg", llm.gotParts[0].MIMEType)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, replyNoAppointments, sender.sent[0].text)
}

func TestHandleMessageAudioFetchFailure(t *testing.T) {
	llm := &stubLLM{}
	fetcher := &stubFetcher{err: errors.New("media expired")}
	sender := &stubSender{}
	svc := newTestService(llm, &stubStore{}, sender, fetcher, nil)

	svc.HandleMessage(context.Background(), whatsapp.ParsedInboundMessage{
		SenderID:  "201001234567",
		MessageID: "wamid.4",
		Type:      whatsapp.MessageTypeAudio,
		MediaID:   "media-42",
	})

	assert.Equal(t, 0, llm.calls, "model must not be invoked when the media fetch fails")
	require.Len(t, sender.sent, 1)
	assert.Equal(t, replyMediaError, sender.sent[0].text)
}

func TestHandleMessageDuplicateDeliverySkipped(t *testing.T) {
	llm := &stubLLM{response: `{"action":"chat","response":"أهلا"}`}
	sender := &stubSender{}
	svc := newTestService(llm, &stubStore{}, sender, &stubFetcher{}, &mapDedupe{seen: map[string]bool{}})

	msg := whatsapp.ParsedInboundMessage{
		SenderID:  "201001234567",
		MessageID: "wamid.5",
		Type:      whatsapp.MessageTypeText,
		Text:      "hi",
	}

	svc.HandleMessage(context.Background(), msg)
	svc.HandleMessage(context.Background(), msg)

	assert.Len(t, sender.sent, 1, "redelivery must be processed once")
	assert.Equal(t, 1, llm.calls)
}

func TestHandleMessageSendFailureIsSwallowed(t *testing.T) {
	llm := &stubLLM{response: `{"action":"chat","response":"أهلا"}`}
	sender := &stubSender{err: errors.New("graph api 500")}
	svc := newTestService(llm, &stubStore{}, sender, &stubFetcher{}, nil)

	// Must not panic; the failure is logged and dropped.
	svc.HandleMessage(context.Background(), whatsapp.ParsedInboundMessage{
		SenderID: "201001234567",
		Type:     whatsapp.MessageTypeText,
		Text:     "hi",
	})

	assert.Empty(t, sender.sent)
}
