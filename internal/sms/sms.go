package sms

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DeliveryResult is what a send attempt reports. Fire-and-forget: no delivery
// guarantee beyond the gateway accepting the message.
type DeliveryResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Provider sends a text message to a phone number.
type Provider interface {
	Send(phone, message string) DeliveryResult
}

const defaultFast2SMSBaseURL = "https://www.fast2sms.com/dev/bulkV2"

// Fast2SMSProvider sends via the Fast2SMS quick route.
type Fast2SMSProvider struct {
	APIKey  string
	BaseURL string
	client  *http.Client
}

func NewFast2SMSProvider(apiKey string) *Fast2SMSProvider {
	return &Fast2SMSProvider{
		APIKey:  apiKey,
		BaseURL: defaultFast2SMSBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *Fast2SMSProvider) Send(phone, message string) DeliveryResult {
	apiURL := fmt.Sprintf(
		"%s?authorization=%s&route=q&message=%s&language=english&flash=0&numbers=%s",
		p.BaseURL,
		url.QueryEscape(p.APIKey),
		url.QueryEscape(message),
		url.QueryEscape(phone),
	)

	req, err := http.NewRequest("GET", apiURL, nil)
	if err != nil {
		return DeliveryResult{Success: false, Message: fmt.Sprintf("failed to create SMS request: %v", err)}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return DeliveryResult{Success: false, Message: fmt.Sprintf("failed to send SMS: %v", err)}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return DeliveryResult{Success: false, Message: fmt.Sprintf("SMS API error (status %d): %s", resp.StatusCode, string(body))}
	}
	if strings.Contains(string(body), `"return":false`) {
		return DeliveryResult{Success: false, Message: fmt.Sprintf("SMS API error: %s", string(body))}
	}

	return DeliveryResult{Success: true, Message: "Message sent successfully"}
}

// MockProvider prints messages to the log instead of sending them. Used when
// no API key is configured.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(phone, message string) DeliveryResult {
	log.Printf("[SMS] MOCK to %s: %q", phone, message)
	return DeliveryResult{Success: true, Message: "Message sent successfully"}
}
