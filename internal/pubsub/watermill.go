package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel/trace"
)

// WatermillBridge implements Publisher and Subscriber on watermill's
// in-process GoChannel.
type WatermillBridge struct {
	pub     message.Publisher
	sub     message.Subscriber
	tracing func(message.HandlerFunc) message.HandlerFunc
	logger  *slog.Logger
}

const (
	// Metadata keys used to carry Message fields through watermill.
	metaKeyClientID = "client_id"
	metaKeyTopic    = "topic"
)

// NewWatermillBridge creates an untraced bus that logs through logger.
func NewWatermillBridge(logger *slog.Logger) *WatermillBridge {
	return NewWatermillBridgeWithTracer(logger, nil)
}

// NewWatermillBridgeWithTracer creates a bus whose publishes and handler
// invocations are recorded as spans on tracer. A nil tracer disables tracing.
func NewWatermillBridgeWithTracer(logger *slog.Logger, tracer trace.Tracer) *WatermillBridge {
	if logger == nil {
		logger = slog.Default()
	}

	goChannel := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewSlogLogger(logger),
	)

	bridge := &WatermillBridge{
		pub:    goChannel,
		sub:    goChannel,
		logger: logger,
	}
	if tracer != nil {
		bridge.pub = NewPublisherTracingMiddleware(goChannel, tracer)
		bridge.tracing = TracingMiddleware(tracer)
	}
	return bridge
}

func mapToWatermillMessage(ctx context.Context, msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	wmMsg.SetContext(context.WithoutCancel(ctx))

	wmMsg.Metadata.Set(metaKeyClientID, msg.ClientID)
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	return wmMsg
}

func mapToPubSubMessage(wmMsg *message.Message) Message {
	metadata := make(map[string]string)
	for k, v := range wmMsg.Metadata {
		if k != metaKeyClientID && k != metaKeyTopic {
			metadata[k] = v
		}
	}

	return Message{
		Topic:    wmMsg.Metadata.Get(metaKeyTopic),
		ClientID: wmMsg.Metadata.Get(metaKeyClientID),
		Payload:  wmMsg.Payload,
		Metadata: metadata,
	}
}

// Publish implements the Publisher interface. Request cancellation does not
// reach subscribers: they run after the response has been written.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	return wb.pub.Publish(msg.Topic, mapToWatermillMessage(ctx, msg))
}

// Subscribe implements the Subscriber interface. It returns as soon as the
// subscription is active.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	process := func(wmMsg *message.Message) ([]*message.Message, error) {
		return nil, handler(wmMsg.Context(), mapToPubSubMessage(wmMsg))
	}
	if wb.tracing != nil {
		process = wb.tracing(process)
	}

	go func() {
		for wmMsg := range messages {
			if _, err := process(wmMsg); err != nil {
				// GoChannel resends nacked messages forever; failures are logged and dropped.
				wb.logger.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
			}
			wmMsg.Ack()
		}
		wb.logger.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

// Close shuts down the bus and ends every subscription loop.
func (wb *WatermillBridge) Close() error {
	return wb.sub.Close()
}
