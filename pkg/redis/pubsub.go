package redis

import (
	"context"
	"fmt"
	"time"
)

// MessageHandler defines an interface that processes Redis pub/sub messages
type MessageHandler interface {
	HandleMessage(ctx context.Context, channel string, message string) error
}

// HandlerFunc defines a function that handles Redis pub/sub messages
type HandlerFunc func(ctx context.Context, channel string, message string) error

var _ MessageHandler = HandlerFunc(nil)

// HandleMessage implements the MessageHandler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(ctx context.Context, channel string, message string) error {
	return f(ctx, channel, message)
}

// SubscriberConfig defines the configuration options for a Subscriber
type SubscriberConfig struct {
	// ReconnectDelay is the delay before resubscribing after a dropped connection
	ReconnectDelay time.Duration
	// ChannelNamespace is the namespace for organizing channels
	ChannelNamespace string
}

// NewSubscriberConfig creates a new subscriber configuration with default values
func NewSubscriberConfig() *SubscriberConfig {
	return &SubscriberConfig{
		ReconnectDelay:   1 * time.Second,
		ChannelNamespace: "",
	}
}

// WithReconnectDelay sets the delay before resubscribing
func (sc *SubscriberConfig) WithReconnectDelay(delay time.Duration) *SubscriberConfig {
	if delay < 0 {
		panic(fmt.Sprintf("invalid reconnect delay: %v, must be non-negative", delay))
	}
	sc.ReconnectDelay = delay
	return sc
}

// WithChannelNamespace sets the namespace for organizing channels
func (sc *SubscriberConfig) WithChannelNamespace(namespace string) *SubscriberConfig {
	sc.ChannelNamespace = namespace
	return sc
}

// Subscriber consumes messages from Redis pub/sub channels
type Subscriber struct {
	client  *Client
	config  *SubscriberConfig
	handler MessageHandler
}

// NewSubscriber creates a new subscriber
func NewSubscriber(client *Client, handler MessageHandler, config *SubscriberConfig) *Subscriber {
	if config == nil {
		config = NewSubscriberConfig()
	}
	return &Subscriber{
		client:  client,
		config:  config,
		handler: handler,
	}
}

// buildChannelName constructs the full channel name using namespace::channel format
func (s *Subscriber) buildChannelName(channel string) string {
	if s.config.ChannelNamespace != "" {
		return s.config.ChannelNamespace + "::" + channel
	}
	return channel
}

// Subscribe listens on the given channels until the context is cancelled.
// Handler errors are returned through the error channel but do not stop the
// subscription; the subscription resubscribes after dropped connections.
func (s *Subscriber) Subscribe(ctx context.Context, channels ...string) <-chan error {
	errChan := make(chan error, 1)

	fullChannels := make([]string, len(channels))
	for i, channel := range channels {
		fullChannels[i] = s.buildChannelName(channel)
	}

	go func() {
		defer close(errChan)

		for {
			pubsub := s.client.GetClient().Subscribe(ctx, fullChannels...)
			msgChan := pubsub.Channel()

		receive:
			for {
				select {
				case <-ctx.Done():
					_ = pubsub.Close()
					return
				case message, ok := <-msgChan:
					if !ok {
						// Connection dropped, resubscribe after a delay
						break receive
					}
					if err := s.handler.HandleMessage(ctx, message.Channel, message.Payload); err != nil {
						select {
						case errChan <- fmt.Errorf("handler failed for channel %s: %w", message.Channel, err):
						default:
						}
					}
				}
			}

			_ = pubsub.Close()

			select {
			case <-ctx.Done():
				return
			case <-time.After(s.config.ReconnectDelay):
			}
		}
	}()

	return errChan
}

// Publish sends a message to a channel. Exposed for tests and local tooling;
// in production the external pipeline is the publisher.
func (s *Subscriber) Publish(ctx context.Context, channel string, message string) error {
	return s.client.GetClient().Publish(ctx, s.buildChannelName(channel), message).Err()
}
