package notify

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"skillshub/backend/models"
)

// Webhook posts feedback events to an external admin webhook (Slack,
// internal dashboard, whatever the URL points at). An empty URL disables
// it.
type Webhook struct {
	client *resty.Client
	url    string
}

func NewWebhook(url string) *Webhook {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(0)
	return &Webhook{client: client, url: url}
}

// PostFeedback delivers the feedback entry as JSON.
func (w *Webhook) PostFeedback(entry models.Feedback) error {
	if w.url == "" {
		return nil
	}

	resp, err := w.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":    "feedback.received",
			"feedback": entry,
		}).
		Post(w.url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("webhook responded %s", resp.Status())
	}
	return nil
}
