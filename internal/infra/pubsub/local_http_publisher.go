package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"saleslens/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishImportRequested pushes an import request to the local worker
func (p *localHTTPPublisher) PublishImportRequested(ctx context.Context, event *service.ImportRequestedEvent) error {
	msg, err := newRequestedMessage(event)
	if err != nil {
		return err
	}

	return p.push(ctx, msg)
}

// PublishImportCompleted pushes an import outcome to the local endpoint
func (p *localHTTPPublisher) PublishImportCompleted(ctx context.Context, event *service.ImportCompletedEvent) error {
	msg, err := newCompletedMessage(event)
	if err != nil {
		return err
	}

	return p.push(ctx, msg)
}

func (p *localHTTPPublisher) push(ctx context.Context, msg *outgoingMessage) error {
	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/import-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	pushMsg.Message.MessageID = msg.id
	if pushMsg.Message.MessageID == "" {
		pushMsg.Message.MessageID = uuid.NewString()
	}
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = msg.attributes

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[LocalPubSub] Publishing event",
		slog.String("endpoint", p.endpoint),
		slog.String("event_type", msg.eventType),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if msg.id != "" {
		req.Header.Set("X-Request-Id", msg.id)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Event published successfully",
		slog.String("event_type", msg.eventType),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
