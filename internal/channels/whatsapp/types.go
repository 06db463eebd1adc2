package whatsapp

// Message types the assistant understands. Other types (image, sticker,
// location) are skipped by the webhook parser.
const (
	MessageTypeText  = "text"
	MessageTypeAudio = "audio"
)

// WebhookEvent is the top-level structure received from Meta's webhook.
type WebhookEvent struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry represents a single entry in the webhook payload.
type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

// Change carries one change notification, with the messages nested under
// its value.
type Change struct {
	Field string `json:"field"`
	Value Value  `json:"value"`
}

// Value is the payload of a change notification.
type Value struct {
	MessagingProduct string    `json:"messaging_product"`
	Metadata         Metadata  `json:"metadata"`
	Contacts         []Contact `json:"contacts,omitempty"`
	Messages         []Message `json:"messages,omitempty"`
	Statuses         []Status  `json:"statuses,omitempty"`
}

// Metadata identifies the business phone number the message was sent to.
type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

// Contact carries the sender's profile.
type Contact struct {
	WaID    string  `json:"wa_id"`
	Profile Profile `json:"profile"`
}

// Profile holds the sender's display name.
type Profile struct {
	Name string `json:"name"`
}

// Message is a single inbound message.
type Message struct {
	From      string `json:"from"`
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Text      *Text  `json:"text,omitempty"`
	Audio     *Audio `json:"audio,omitempty"`
}

// Text is the body of a text message.
type Text struct {
	Body string `json:"body"`
}

// Audio references a voice note by media id.
type Audio struct {
	ID       string `json:"id"`
	MIMEType string `json:"mime_type"`
	Voice    bool   `json:"voice,omitempty"`
}

// Status is a delivery/read receipt for an outbound message.
type Status struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ParsedInboundMessage is the transport-independent view handed to the
// assistant pipeline.
type ParsedInboundMessage struct {
	SenderID  string
	MessageID string
	Type      string
	Text      string
	MediaID   string
}

// SendRequest is the Cloud API payload for an outbound text message.
type SendRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             SendText `json:"text"`
}

// SendText is the outbound message body.
type SendText struct {
	Body string `json:"body"`
}

// SendResponse is the Graph API response after sending a message.
type SendResponse struct {
	Messages []SentMessage `json:"messages,omitempty"`
	Error    *APIError     `json:"error,omitempty"`
}

// SentMessage carries the id of an accepted outbound message.
type SentMessage struct {
	ID string `json:"id"`
}

// APIError represents an error returned by the Graph API.
type APIError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	FBTraceID string `json:"fbtrace_id"`
}

// MediaInfo is the metadata lookup response for a media id. The URL is a
// short-lived signed link that must be fetched with the access token.
type MediaInfo struct {
	URL      string    `json:"url"`
	MIMEType string    `json:"mime_type"`
	FileSize int64     `json:"file_size,omitempty"`
	ID       string    `json:"id,omitempty"`
	Error    *APIError `json:"error,omitempty"`
}
