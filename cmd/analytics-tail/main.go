package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"paperstash/config"
	"paperstash/internal/analytics"
	internalredis "paperstash/internal/redis"
	"paperstash/pkg/logger"
)

// analytics-tail prints analytics events published on the redis channel.
func main() {
	cfg := config.LoadConfig()
	l := logger.New(logger.DevelopmentMode)
	defer l.Sync()

	client := internalredis.NewClient(internalredis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := internalredis.Ping(ctx, client); err != nil {
		log.Fatalf("redis: %v", err)
	}

	l.Infof("tailing %s", cfg.AnalyticsChannel)
	err := internalredis.NewSubscriber(client).Subscribe(ctx, []string{cfg.AnalyticsChannel}, func(channel string, payload []byte) {
		var env analytics.Envelope
		if err := json.Unmarshal(payload, &env); err != nil {
			l.Warnf("%s: undecodable message: %v", channel, err)
			return
		}
		l.Infof("%s %s user=%s payload=%s", env.OccurredAt.Format("15:04:05"), env.EventType, env.UserID, string(env.Payload))
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("subscribe: %v", err)
	}
}
