package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultGraphAPIBase = "https://graph.facebook.com/v23.0"
	defaultHTTPTimeout  = 15 * time.Second

	// WhatsApp voice notes are capped at 16 MB by the platform.
	maxMediaBytes = 16 << 20
)

// Client sends messages and fetches media via the WhatsApp Cloud API
// (Meta Graph API).
type Client struct {
	accessToken   string
	phoneNumberID string
	graphAPIBase  string
	httpClient    *http.Client
}

// NewClient creates a new Graph API client for the given business number.
func NewClient(accessToken, phoneNumberID string) *Client {
	return &Client{
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		graphAPIBase:  defaultGraphAPIBase,
		httpClient:    &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// SetGraphAPIBase overrides the Graph API base URL (useful for testing).
func (c *Client) SetGraphAPIBase(base string) {
	c.graphAPIBase = base
}

// SendTextMessage sends a plain text message to the given recipient.
func (c *Client) SendTextMessage(ctx context.Context, to, text string) error {
	payload := SendRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             SendText{Body: text},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("whatsapp: marshal send request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.graphAPIBase, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("whatsapp: create send request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: send message: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("whatsapp: read send response: %w", err)
	}

	var sendResp SendResponse
	if err := json.Unmarshal(respBody, &sendResp); err != nil {
		return fmt.Errorf("whatsapp: unmarshal send response: %w", err)
	}
	if sendResp.Error != nil {
		return fmt.Errorf("whatsapp: API error %d: %s", sendResp.Error.Code, sendResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("whatsapp: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// FetchMedia resolves a media id to its content: a metadata lookup for the
// signed URL and MIME type, then an authorized download.
func (c *Client) FetchMedia(ctx context.Context, mediaID string) ([]byte, string, error) {
	info, err := c.mediaInfo(ctx, mediaID)
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, info.URL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("whatsapp: create media download request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("whatsapp: download media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("whatsapp: media download status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxMediaBytes))
	if err != nil {
		return nil, "", fmt.Errorf("whatsapp: read media body: %w", err)
	}
	return data, info.MIMEType, nil
}

func (c *Client) mediaInfo(ctx context.Context, mediaID string) (*MediaInfo, error) {
	url := fmt.Sprintf("%s/%s", c.graphAPIBase, mediaID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("whatsapp: create media info request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("whatsapp: fetch media info: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("whatsapp: read media info: %w", err)
	}

	var info MediaInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("whatsapp: unmarshal media info: %w", err)
	}
	if info.Error != nil {
		return nil, fmt.Errorf("whatsapp: API error %d: %s", info.Error.Code, info.Error.Message)
	}
	if info.URL == "" {
		return nil, fmt.Errorf("whatsapp: media %s has no download url", mediaID)
	}
	return &info, nil
}
