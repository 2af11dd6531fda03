package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"agilefinance/internal/config"
	"agilefinance/internal/dbsql"

	"go.uber.org/zap"
)

// Sender delivers an outbound text through the channel's provider and
// returns the provider's message id.
type Sender interface {
	SendText(ctx context.Context, channel *dbsql.Channel, number, text string) (externalID string, err error)
}

type EvolutionClient struct {
	http        *http.Client
	delay       time.Duration
	linkPreview bool
	log         *zap.Logger
}

func NewEvolutionClient(cfg config.EvolutionConfig, log *zap.Logger) *EvolutionClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &EvolutionClient{
		http:        &http.Client{Timeout: timeout},
		delay:       time.Duration(cfg.SendDelayMs) * time.Millisecond,
		linkPreview: cfg.LinkPreview,
		log:         log,
	}
}

type sendTextRequest struct {
	Number      string `json:"number"`
	Text        string `json:"text"`
	Delay       int64  `json:"delay,omitempty"`
	LinkPreview bool   `json:"linkPreview"`
}

type sendTextResponse struct {
	Key struct {
		ID string `json:"id"`
	} `json:"key"`
	Status string `json:"status"`
}

func (c *EvolutionClient) SendText(ctx context.Context, channel *dbsql.Channel, number, text string) (string, error) {
	if channel.ServerURL == "" {
		return "", fmt.Errorf("channel %d has no server url", channel.ID)
	}
	endpoint := strings.TrimRight(channel.ServerURL, "/") + "/message/sendText/" + url.PathEscape(channel.Instance)

	body, err := json.Marshal(sendTextRequest{
		Number:      number,
		Text:        text,
		Delay:       c.delay.Milliseconds(),
		LinkPreview: c.linkPreview,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", channel.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("evolution send: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("evolution send: read response: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Warn("evolution rejected message",
			zap.String("instance", channel.Instance),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return "", fmt.Errorf("evolution send: status %d", resp.StatusCode)
	}

	var out sendTextResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("evolution send: decode response: %w", err)
	}
	return out.Key.ID, nil
}
