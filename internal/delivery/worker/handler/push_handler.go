package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"saleslens/config"
	deliverycontext "saleslens/internal/delivery/context"
	"saleslens/internal/domain/constants"
	domainerrors "saleslens/internal/domain/errors"
	"saleslens/internal/domain/service"
	"saleslens/internal/errors"
	"saleslens/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const attrEventType = "event_type"

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler runs imports requested over Pub/Sub push
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	importUC       usecase.ImportUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	ImportUC usecase.ImportUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google-delivered pushes outside development carry an OIDC token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		importUC:       params.ImportUC,
	}
}

// HandlePush acks (200) handled and permanently failed messages and nacks (503)
// retryable failures so Pub/Sub redelivers them.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	eventType := pushMsg.Message.Attributes[attrEventType]
	if eventType == "" {
		eventType = service.EventTypeImportRequested
	}
	if eventType != service.EventTypeImportRequested {
		h.logger.Debug("[Worker] Ignoring event", slog.String("event_type", eventType), slog.String("message_id", pushMsg.Message.MessageID))

		return c.NoContent(http.StatusOK)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ImportRequestedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse import request", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing import request",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("location", event.Location),
	)

	if err := h.processImport(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Import failed",
			slog.String("location", event.Location),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub retry; 200 stops redelivery of requests that can never succeed
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ImportRequestedEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// From RequestIDMiddleware via X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processImport runs the import. Unreadable or malformed sources are permanent
// failures; anything else, including a fatal batch write, is retried. Retrying
// is safe because re-imported rows are rejected as duplicates.
func (h *PushHandler) processImport(ctx context.Context, event *service.ImportRequestedEvent) error {
	location := strings.TrimSpace(event.Location)
	if location == "" {
		return errors.New("import request has no location")
	}

	summary, err := h.importUC.ImportLocation(ctx, location)
	if err != nil {
		if isPermanent(err) {
			return errors.WithStack(err)
		}

		return newRetryableError(errors.WithStack(err))
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Import finished",
		slog.String("location", location),
		slog.Int("inserted", summary.InsertedCount),
		slog.Int("duplicates", summary.DuplicateRows),
		slog.Int("errors", summary.ErrorRows),
	)

	return nil
}

func isPermanent(err error) bool {
	return errors.IsAny(err,
		domainerrors.ErrInvalidImportSource,
		domainerrors.ErrUnsupportedImportFormat,
		domainerrors.ErrValidationFailed,
	)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
