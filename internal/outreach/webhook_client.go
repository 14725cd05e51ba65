package outreach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const maxWebhookBody = 1 << 20

// WebhookClient posts a delivery request and returns the raw answer.
type WebhookClient interface {
	Post(ctx context.Context, payload WebhookPayload) (status int, body []byte, err error)
}

type HTTPWebhookClient struct {
	url    string
	client *http.Client
}

func NewHTTPWebhookClient(url string, client *http.Client) *HTTPWebhookClient {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPWebhookClient{url: url, client: client}
}

func (c *HTTPWebhookClient) Post(ctx context.Context, payload WebhookPayload) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWebhookBody))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}
