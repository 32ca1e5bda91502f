package sms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Gateway is the interface for delivering SMS-style text messages, such as
// text receipts. Chunking long messages is the gateway provider's concern.
type Gateway interface {
	// Send delivers a text message to a phone number.
	Send(to, body string) error
	// IsConfigured returns true if the gateway can actually deliver.
	IsConfigured() bool
}

// --- HTTP Gateway (POSTs JSON to a provider webhook) ---

type httpGateway struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPGateway creates a gateway that POSTs messages to an SMS provider
// endpoint as JSON.
func NewHTTPGateway(endpoint, apiKey string) Gateway {
	return &httpGateway{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

func (g *httpGateway) Send(to, body string) error {
	payload, err := json.Marshal(sendRequest{To: to, Body: body})
	if err != nil {
		return fmt.Errorf("sms: failed to encode message: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("sms: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms: failed to reach gateway %s: %w", g.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms: gateway %s returned status %d", g.endpoint, resp.StatusCode)
	}
	return nil
}

func (g *httpGateway) IsConfigured() bool {
	return g.endpoint != ""
}

// --- Null Gateway (no-op, used when no SMS provider is configured) ---

type nullGateway struct{}

// NewNullGateway creates a no-op gateway for environments without a provider.
func NewNullGateway() Gateway {
	return &nullGateway{}
}

func (g *nullGateway) Send(to, body string) error {
	return nil
}

func (g *nullGateway) IsConfigured() bool {
	return false
}

// NewGatewayFromConfig creates the appropriate Gateway based on config.
// An empty endpoint yields the null gateway.
func NewGatewayFromConfig(endpoint, apiKey string) Gateway {
	if endpoint == "" {
		return NewNullGateway()
	}
	return NewHTTPGateway(endpoint, apiKey)
}
