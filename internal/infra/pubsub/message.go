package pubsub

import (
	"encoding/json"

	"saleslens/internal/domain/service"

	"github.com/pkg/errors"
)

// outgoingMessage is an encoded event plus its routing attributes
type outgoingMessage struct {
	id         string
	eventType  string
	data       []byte
	attributes map[string]string
}

func newRequestedMessage(event *service.ImportRequestedEvent) (*outgoingMessage, error) {
	return newMessage(service.EventTypeImportRequested, event.RequestID, event, map[string]string{
		"location": event.Location,
	})
}

func newCompletedMessage(event *service.ImportCompletedEvent) (*outgoingMessage, error) {
	status := "succeeded"
	if event.Failed {
		status = "failed"
	}

	return newMessage(service.EventTypeImportCompleted, event.RequestID, event, map[string]string{
		"source": event.Source,
		"status": status,
	})
}

func newMessage(eventType, requestID string, payload any, extra map[string]string) (*outgoingMessage, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{"event_type": eventType}
	for k, v := range extra {
		attributes[k] = v
	}
	if requestID != "" {
		attributes["request_id"] = requestID
	}

	return &outgoingMessage{
		id:         requestID,
		eventType:  eventType,
		data:       data,
		attributes: attributes,
	}, nil
}
