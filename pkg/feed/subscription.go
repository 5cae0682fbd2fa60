package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Subscription is an active Pub/Sub subscription delivering decoded events.
// Caller must call Close() when done.
type Subscription[T any] struct {
	events <-chan *T
	errors <-chan error
	cancel func()
	once   sync.Once
}

// Events returns the channel of decoded events.
// The channel is closed when the subscription is closed or the context is cancelled.
func (s *Subscription[T]) Events() <-chan *T {
	return s.events
}

// Errors returns the channel of non-fatal errors (undecodable messages).
// The subscription keeps running after an error; the message is skipped.
func (s *Subscription[T]) Errors() <-chan error {
	return s.errors
}

// Close stops the subscription. Safe to call multiple times.
func (s *Subscription[T]) Close() error {
	s.once.Do(s.cancel)
	return nil
}

// HandSubscription delivers hand events.
type HandSubscription = Subscription[HandEvent]

// SnapshotSubscription delivers snapshot updates.
type SnapshotSubscription = Subscription[Snapshot]

// SubscribeHandEvents subscribes to hand, undo and new_shoe events for this table.
// Delivery is at-most-once: events published while nobody listens are lost.
func (c *Client) SubscribeHandEvents(ctx context.Context) (*HandSubscription, error) {
	return subscribe[HandEvent](ctx, c.rdb, HandEventsChannel(c.table), "hand event")
}

// SubscribeSnapshots subscribes to snapshot updates for this table.
func (c *Client) SubscribeSnapshots(ctx context.Context) (*SnapshotSubscription, error) {
	return subscribe[Snapshot](ctx, c.rdb, SnapshotEventsChannel(c.table), "snapshot event")
}

func subscribe[T any](ctx context.Context, rdb *redis.Client, channel, what string) (*Subscription[T], error) {
	pubsub := rdb.Subscribe(ctx, channel)

	// Wait for the subscription to be confirmed so no event published after
	// this call returns can be missed
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	eventsChan := make(chan *T, 10)
	errorsChan := make(chan error, 10)

	subCtx, cancelFunc := context.WithCancel(ctx)

	go func() {
		defer close(eventsChan)
		defer close(errorsChan)
		defer pubsub.Close()

		ch := pubsub.Channel()

		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}

				var event T
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					select {
					case errorsChan <- fmt.Errorf("failed to unmarshal %s: %w", what, err):
					case <-subCtx.Done():
						return
					}
					continue
				}

				select {
				case eventsChan <- &event:
				case <-subCtx.Done():
					return
				}
			}
		}
	}()

	return &Subscription[T]{
		events: eventsChan,
		errors: errorsChan,
		cancel: cancelFunc,
	}, nil
}
