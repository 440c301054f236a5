package api

import (
	"context"
	"time"

	"github.com/pressmill/console/internal/routes"
)

type Webhook struct {
	ID     string   `json:"id"`
	URL    string   `json:"url"`
	Events []string `json:"events"`
	Secret string   `json:"secret,omitempty"`
	Active bool     `json:"active"`

	LastTriggeredAt *time.Time `json:"lastTriggeredAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type WebhookInput struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
	Secret string   `json:"secret,omitempty"`
	Active *bool    `json:"active,omitempty"`
}

// WebhookTestResult reports the outcome of a test delivery.
type WebhookTestResult struct {
	Delivered  bool   `json:"delivered"`
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error,omitempty"`
}

type WebhooksService struct {
	client *Client
}

func (s *WebhooksService) List(ctx context.Context, params ListParams) (Paginated[Webhook], error) {
	return getList[Webhook](ctx, s.client, routes.Webhooks, params)
}

func (s *WebhooksService) Create(ctx context.Context, in WebhookInput) (Webhook, error) {
	var out Webhook
	err := s.client.Post(ctx, routes.Webhooks, in, &out)
	return out, err
}

func (s *WebhooksService) Update(ctx context.Context, id string, in WebhookInput) (Webhook, error) {
	var out Webhook
	err := s.client.Put(ctx, routes.Webhooks+"/"+id, in, &out)
	return out, err
}

func (s *WebhooksService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, routes.Webhooks+"/"+id)
}

// Test asks the platform to fire a test delivery at the webhook's URL.
func (s *WebhooksService) Test(ctx context.Context, id string) (WebhookTestResult, error) {
	var out WebhookTestResult
	err := s.client.Post(ctx, routes.Webhooks+"/"+id+"/test", nil, &out)
	return out, err
}
