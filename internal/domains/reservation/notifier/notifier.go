package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=../mocks/notifier_mock.go -package=mocks

import (
	"context"
	"fmt"

	"latina/config"
	"latina/infras/kafka"
	"latina/infras/otel"
	"latina/internal/domains/reservation/model"
	"latina/shared/constant"
)

// Notifier tells staff systems that a reservation arrived.
type Notifier interface {
	Publish(ctx context.Context, event model.ReceivedEvent) error
}

type kafkaNotifier struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

// New returns nil when there is no Kafka client.
func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Notifier {
	if client == nil {
		return nil
	}

	return &kafkaNotifier{
		client: client,
		topic:  cfg.Kafka.Topic,
		otel:   otel,
	}
}

func (n *kafkaNotifier) Publish(ctx context.Context, event model.ReceivedEvent) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".ReservationReceived")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("messaging.destination", n.topic)

	// Keyed by id so retries land on the same partition.
	if err = n.client.SendMessages(ctx, n.topic, kafka.Message{Key: event.ID, Value: event}); err != nil {
		return fmt.Errorf("failed to publish reservation %s: %w", event.ID, err)
	}

	return nil
}
