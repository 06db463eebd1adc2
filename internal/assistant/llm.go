package assistant

import "context"

// Part is a single model input: text, or a binary blob with a MIME type
// (voice messages).
type Part struct {
	Text     string
	Data     []byte
	MIMEType string
}

// TextPart builds a text input part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// BlobPart builds a binary input part.
func BlobPart(data []byte, mimeType string) Part {
	return Part{Data: data, MIMEType: mimeType}
}

// LLMClient is the language-model collaborator. The extractor makes a single
// call per inbound message; no retries.
type LLMClient interface {
	Complete(ctx context.Context, system string, parts []Part) (string, error)
}
