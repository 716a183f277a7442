package pubsub

import (
	"context"
	"log/slog"

	"saleslens/config"
	"saleslens/internal/domain/constants"
	"saleslens/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops import events when no broker is configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishImportRequested(_ context.Context, event *service.ImportRequestedEvent) error {
	p.logger.Debug("Event publishing disabled, dropping import request",
		slog.String("location", event.Location),
	)

	return nil
}

func (p *noopPublisher) PublishImportCompleted(_ context.Context, event *service.ImportCompletedEvent) error {
	p.logger.Debug("Event publishing disabled, dropping import outcome",
		slog.String("source", event.Source),
		slog.Bool("failed", event.Failed),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the import event publisher for the configured provider
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	logger := params.Logger.With(slog.String("component", "event_publisher"))

	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNoop {
		logger.Info("Event publishing disabled")

		return &noopPublisher{logger: logger}, nil
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	publisher, err := newPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(func() error {
		logger.Info("Closing event publisher")

		return publisher.Close()
	}))

	return publisher, nil
}

func validateConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("Publishing import events over local HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
