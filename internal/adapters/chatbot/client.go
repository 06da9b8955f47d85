package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"biduk_site/internal/adapters/observability"
	"biduk_site/internal/domain"
)

// Client posts chat messages to the external assistant.
type Client struct {
	url string
	hc  *http.Client
}

func New(endpoint string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, fmt.Errorf("chatbot endpoint is required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{url: endpoint, hc: &http.Client{Timeout: timeout}}, nil
}

// replyKeys are checked in order; the first non-empty string wins.
var replyKeys = []string{"reply", "response", "message"}

func (c *Client) Reply(ctx context.Context, in domain.ChatRequest) (string, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("ngrok-skip-browser-warning", "true")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("chatbot", "message", 0, time.Since(start))
		return "", fmt.Errorf("chatbot: %w", err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("chatbot", "message", resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Warn().
			Int("status", resp.StatusCode).
			Str("session_id", in.SessionID).
			Str("body", strings.TrimSpace(string(b))).
			Msg("chatbot error response")
		return "", fmt.Errorf("chatbot: status %d", resp.StatusCode)
	}

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("chatbot: decode: %w", err)
	}
	for _, k := range replyKeys {
		if s, ok := out[k].(string); ok && s != "" {
			return s, nil
		}
	}
	return "", nil
}
