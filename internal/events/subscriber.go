package events

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/example/job-board/internal/config"
	"github.com/example/job-board/internal/service"
	"github.com/example/job-board/internal/telemetry"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Subscriber feeds postings published on NATS into the same upsert path as
// POST /posts.
type Subscriber struct {
	logger  *zap.Logger
	nc      *nats.Conn
	svc     *service.PostService
	subject string
	queue   string
	sub     *nats.Subscription
}

func NewSubscriber(logger *zap.Logger, nc *nats.Conn, cfg *config.Config, svc *service.PostService) *Subscriber {
	return &Subscriber{
		logger:  logger,
		nc:      nc,
		svc:     svc,
		subject: cfg.NATSSubject,
		queue:   cfg.NATSQueue,
	}
}

// Connect returns nil when NATS_URL is unset.
func Connect(cfg *config.Config) (*nats.Conn, error) {
	if cfg.NATSURL == "" {
		return nil, nil
	}
	return nats.Connect(cfg.NATSURL,
		nats.Name(telemetry.ServiceName),
		nats.RetryOnFailedConnect(true),
	)
}

func (s *Subscriber) RegisterSubscriptions(lc fx.Lifecycle) error {
	if s.nc == nil {
		s.logger.Info("NATS ingestion disabled")
		return nil
	}

	sub, err := s.nc.QueueSubscribe(s.subject, s.queue, s.handleMessage)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", s.subject, err)
	}
	s.sub = sub
	s.logger.Info("registered NATS subscription",
		zap.String("subject", s.subject),
		zap.String("queue", s.queue))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return s.nc.Drain()
		},
	})
	return nil
}

func (s *Subscriber) handleMessage(msg *nats.Msg) {
	if err := s.handle(context.Background(), msg.Data); err != nil {
		s.logger.Error("failed to ingest job posting",
			zap.String("subject", msg.Subject),
			zap.Error(err))
		return
	}
	s.logger.Debug("ingested job posting", zap.String("subject", msg.Subject))
}

func (s *Subscriber) handle(ctx context.Context, data []byte) error {
	ctx, span := telemetry.GetTracer(telemetry.ServiceName).Start(ctx, "Subscriber.handle")
	defer span.End()

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	_, err := s.svc.CreatePost(ctx, payload)
	return err
}
