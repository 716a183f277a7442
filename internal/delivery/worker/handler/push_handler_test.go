package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"saleslens/config"
	deliverycontext "saleslens/internal/delivery/context"
	"saleslens/internal/domain/constants"
	"saleslens/internal/domain/entity"
	domainerrors "saleslens/internal/domain/errors"
	"saleslens/internal/domain/service"
	mockUsecase "saleslens/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockImportUsecase) {
	importUC := mockUsecase.NewMockImportUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		ImportUC: importUC,
	}), importUC
}

func pushBody(t *testing.T, eventType string, payload any, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Subscription = "projects/local/subscriptions/import-sub"
	msg.Message.MessageID = "m-1"
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = map[string]string{}
	if eventType != "" {
		msg.Message.Attributes[attrEventType] = eventType
	}
	for k, v := range attrs {
		msg.Message.Attributes[k] = v
	}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_RunsRequestedImport(t *testing.T) {
	h, importUC := createTestPushHandler(t, nil)

	importUC.EXPECT().
		ImportLocation(mock.Anything, "gs://imports/jan.csv").
		RunAndReturn(func(ctx context.Context, _ string) (*entity.ImportSummary, error) {
			assert.Equal(t, "req-7", deliverycontext.GetRequestIDFromContext(ctx))
			assert.NotNil(t, deliverycontext.GetLogger(ctx))

			return &entity.ImportSummary{InsertedCount: 3}, nil
		})

	body := pushBody(t, service.EventTypeImportRequested,
		&service.ImportRequestedEvent{RequestID: "from-payload", Location: " gs://imports/jan.csv "},
		map[string]string{"request_id": "req-7"})

	assert.Equal(t, http.StatusOK, push(h, body).Code)
}

func TestPushHandler_RequestIDFallsBackToPayload(t *testing.T) {
	h, importUC := createTestPushHandler(t, nil)

	importUC.EXPECT().
		ImportLocation(mock.Anything, "sales.csv").
		RunAndReturn(func(ctx context.Context, _ string) (*entity.ImportSummary, error) {
			assert.Equal(t, "from-payload", deliverycontext.GetRequestIDFromContext(ctx))

			return &entity.ImportSummary{}, nil
		})

	body := pushBody(t, "", &service.ImportRequestedEvent{RequestID: "from-payload", Location: "sales.csv"}, nil)
	assert.Equal(t, http.StatusOK, push(h, body).Code)
}

func TestPushHandler_IgnoresCompletedEvents(t *testing.T) {
	h, _ := createTestPushHandler(t, nil)

	body := pushBody(t, service.EventTypeImportCompleted, &service.ImportCompletedEvent{Source: "sales.csv"}, nil)
	assert.Equal(t, http.StatusOK, push(h, body).Code)
}

func TestPushHandler_FailureClasses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unreadable source is acked", err: domainerrors.ErrInvalidImportSource.WithDetails("no such object"), wantStatus: http.StatusOK},
		{name: "unsupported format is acked", err: domainerrors.ErrUnsupportedImportFormat, wantStatus: http.StatusOK},
		{name: "batch write failure is retried", err: domainerrors.NewBatchWriteError(errors.New("conn reset"), 2, "other"), wantStatus: http.StatusServiceUnavailable},
		{name: "context deadline is retried", err: context.DeadlineExceeded, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, importUC := createTestPushHandler(t, nil)
			importUC.EXPECT().ImportLocation(mock.Anything, "sales.csv").Return(nil, tt.err)

			body := pushBody(t, service.EventTypeImportRequested, &service.ImportRequestedEvent{Location: "sales.csv"}, nil)
			assert.Equal(t, tt.wantStatus, push(h, body).Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	h, _ := createTestPushHandler(t, nil)

	assert.Equal(t, http.StatusBadRequest, push(h, `{"message":`).Code)
	assert.Equal(t, http.StatusBadRequest, push(h, `{"message":{"data":"%%%"}}`).Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("location=sales.csv"))
	assert.Equal(t, http.StatusBadRequest, push(h, `{"message":{"data":"`+notJSON+`"}}`).Code)

	// No location can never succeed, so it is acked
	body := pushBody(t, service.EventTypeImportRequested, &service.ImportRequestedEvent{}, nil)
	assert.Equal(t, http.StatusOK, push(h, body).Code)
}

func TestPushHandler_RequiresTokenForGoogleOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h, _ := createTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	body := pushBody(t, service.EventTypeImportRequested, &service.ImportRequestedEvent{Location: "sales.csv"}, nil)
	assert.Equal(t, http.StatusUnauthorized, push(h, body).Code)

	cfg.Env.Env = constants.EnvDevelop
	h, _ = createTestPushHandler(t, cfg)
	assert.False(t, h.verifyPushAuth)
}

func TestVerifyPubSubToken_HeaderFormat(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.ErrorContains(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Basic abc")
	assert.ErrorContains(t, verifyPubSubToken(req), "invalid authorization header format")
}
