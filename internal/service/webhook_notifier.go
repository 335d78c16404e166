package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tortadestroyer/ai-resume-scanner-1/internal/model"
)

// WebhookNotifier POSTs the notification to an external delivery service
// (e.g. a mail relay). The candidate id travels alongside the message so
// the receiver can correlate deliveries.
type WebhookNotifier struct {
	client *resty.Client
	url    string
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2)
	return &WebhookNotifier{client: client, url: url}
}

func (n *WebhookNotifier) Notify(ctx context.Context, candidate model.Candidate) error {
	msg := BuildNotification(candidate)

	payload := map[string]any{
		"candidate_id": candidate.ID.String(),
		"to":           msg.To,
		"subject":      msg.Subject,
		"body":         msg.Body,
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(n.url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("notification webhook returned %s", resp.Status())
	}
	return nil
}
