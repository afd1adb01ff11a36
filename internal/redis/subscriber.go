package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Subscriber reads analytics envelopes back off pub/sub channels. Channel
// names may be glob patterns.
type Subscriber struct {
	client *redis.Client
}

func NewSubscriber(client *redis.Client) *Subscriber {
	return &Subscriber{client: client}
}

// Subscribe blocks, calling handler for every message, until ctx is done or
// the connection fails.
func (s *Subscriber) Subscribe(ctx context.Context, channels []string, handler func(channel string, payload []byte)) error {
	sub := s.client.PSubscribe(ctx, channels...)
	defer sub.Close()

	for {
		msg, err := sub.ReceiveMessage(ctx)
		if err != nil {
			return err
		}
		handler(msg.Channel, []byte(msg.Payload))
	}
}
