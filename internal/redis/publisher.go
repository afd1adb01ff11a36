package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Publisher publishes analytics envelopes on a fixed pub/sub channel.
type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

func (p *Publisher) Publish(ctx context.Context, payload []byte) error {
	return p.client.Publish(ctx, p.channel, payload).Err()
}

// Close is a no-op; the client is shared and closed by its owner.
func (p *Publisher) Close() error {
	return nil
}
