package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/odroffice/odr-go/config"
)

// Notifier dispatches outbound requester notifications. Delivery is best
// effort; callers log failures and carry on.
type Notifier interface {
	SendStatusUpdate(contact, fullName, requestID, status string) error
	SendTrackingNumber(contact, fullName, requestID string) error
}

// WhatsAppNotifier sends template messages through the WhatsApp Cloud API.
type WhatsAppNotifier struct {
	client *http.Client
}

func NewWhatsAppNotifier() *WhatsAppNotifier {
	return &WhatsAppNotifier{client: &http.Client{Timeout: 10 * time.Second}}
}

type templateParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type templateComponent struct {
	Type       string              `json:"type"`
	Parameters []templateParameter `json:"parameters"`
}

func (n *WhatsAppNotifier) SendStatusUpdate(contact, fullName, requestID, status string) error {
	return n.sendTemplate(contact, "status_update", []templateComponent{{
		Type: "body",
		Parameters: []templateParameter{
			{Type: "text", Text: fullName},
			{Type: "text", Text: requestID},
		},
	}})
}

func (n *WhatsAppNotifier) SendTrackingNumber(contact, fullName, requestID string) error {
	return n.sendTemplate(contact, "odr_request_submitted", []templateComponent{{
		Type: "body",
		Parameters: []templateParameter{
			{Type: "text", Text: fullName},
			{Type: "text", Text: requestID},
		},
	}})
}

func (n *WhatsAppNotifier) sendTemplate(contact, template string, components []templateComponent) error {
	if config.WhatsAppAPIURL == "" {
		log.Printf("whatsapp: no API URL configured, skipping %s to %s", template, contact)
		return nil
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                contact,
		"type":              "template",
		"template": map[string]any{
			"name":       template,
			"language":   map[string]string{"code": "en_US"},
			"components": components,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, config.WhatsAppAPIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+config.WhatsAppToken)

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp API returned %s", resp.Status)
	}
	return nil
}

// NoopNotifier is used in tests and deployments without a messaging channel.
type NoopNotifier struct{}

func (NoopNotifier) SendStatusUpdate(contact, fullName, requestID, status string) error { return nil }
func (NoopNotifier) SendTrackingNumber(contact, fullName, requestID string) error       { return nil }
