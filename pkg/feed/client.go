package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dyluth/roads/pkg/road"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrNoShoe is returned when a hand is recorded or undone before any shoe was started.
	ErrNoShoe = errors.New("no shoe in progress")

	// ErrEmptyShoe is returned when undoing a hand on a shoe with no hands.
	ErrEmptyShoe = errors.New("shoe has no hands to undo")
)

// Client provides table-scoped Redis operations for the outcome feed.
// All keys and channels are automatically namespaced with the table name.
// The client is safe for concurrent use.
type Client struct {
	rdb   *redis.Client
	table string
}

// NewClient creates a feed client for the named table.
// Returns an error if table is empty.
func NewClient(redisOpts *redis.Options, table string) (*Client, error) {
	if table == "" {
		return nil, fmt.Errorf("table name cannot be empty")
	}

	return &Client{
		rdb:   redis.NewClient(redisOpts),
		table: table,
	}, nil
}

// Table returns the table name this client is scoped to.
func (c *Client) Table() string {
	return c.table
}

// Close closes the Redis connection. Implements io.Closer.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping verifies Redis connectivity. Used by health checks.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// StartShoe creates a new shoe, makes it current and publishes a new_shoe event.
func (c *Client) StartShoe(ctx context.Context) (*Shoe, error) {
	shoe := &Shoe{
		ID:          uuid.New().String(),
		Table:       c.table,
		StartedAtMs: time.Now().UnixMilli(),
	}

	if err := c.rdb.HSet(ctx, ShoeInfoKey(c.table, shoe.ID), ShoeToHash(shoe)).Err(); err != nil {
		return nil, fmt.Errorf("failed to write shoe to Redis: %w", err)
	}

	if err := c.rdb.Set(ctx, CurrentShoeKey(c.table), shoe.ID, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to set current shoe: %w", err)
	}

	event := &HandEvent{
		ID:          uuid.New().String(),
		ShoeID:      shoe.ID,
		Kind:        EventKindNewShoe,
		CreatedAtMs: shoe.StartedAtMs,
	}
	if err := c.publishHandEvent(ctx, event); err != nil {
		return nil, err
	}

	return shoe, nil
}

// CurrentShoe returns the ID of the shoe in progress.
// Returns ("", redis.Nil) if no shoe was ever started; use IsNotFound to check.
func (c *Client) CurrentShoe(ctx context.Context) (string, error) {
	id, err := c.rdb.Get(ctx, CurrentShoeKey(c.table)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", redis.Nil
		}
		return "", fmt.Errorf("failed to read current shoe: %w", err)
	}
	return id, nil
}

// GetShoe retrieves a shoe's metadata and hand count.
// Returns (nil, redis.Nil) if the shoe doesn't exist.
func (c *Client) GetShoe(ctx context.Context, shoeID string) (*Shoe, error) {
	hashData, err := c.rdb.HGetAll(ctx, ShoeInfoKey(c.table, shoeID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read shoe from Redis: %w", err)
	}

	if len(hashData) == 0 {
		return nil, redis.Nil
	}

	shoe, err := HashToShoe(hashData)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize shoe: %w", err)
	}

	hands, err := c.rdb.LLen(ctx, ShoeKey(c.table, shoeID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count hands: %w", err)
	}
	shoe.Hands = int(hands)

	return shoe, nil
}

// RecordHand appends an outcome to the current shoe and publishes a hand event.
// Returns ErrNoShoe if no shoe has been started.
func (c *Client) RecordHand(ctx context.Context, outcome road.Outcome) (*HandEvent, error) {
	if !outcome.Valid() {
		return nil, fmt.Errorf("invalid outcome: %d", uint8(outcome))
	}

	shoeID, err := c.currentShoeOrErr(ctx)
	if err != nil {
		return nil, err
	}

	n, err := c.rdb.RPush(ctx, ShoeKey(c.table, shoeID), outcome.String()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to append hand: %w", err)
	}

	event := &HandEvent{
		ID:          uuid.New().String(),
		ShoeID:      shoeID,
		Kind:        EventKindHand,
		Number:      int(n),
		Outcome:     outcome,
		CreatedAtMs: time.Now().UnixMilli(),
	}
	if err := c.publishHandEvent(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// UndoHand removes the last hand of the current shoe and publishes an undo event.
// Returns ErrNoShoe or ErrEmptyShoe when there is nothing to undo.
func (c *Client) UndoHand(ctx context.Context) (*HandEvent, error) {
	shoeID, err := c.currentShoeOrErr(ctx)
	if err != nil {
		return nil, err
	}

	key := ShoeKey(c.table, shoeID)
	letter, err := c.rdb.RPop(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrEmptyShoe
		}
		return nil, fmt.Errorf("failed to remove hand: %w", err)
	}

	outcome, err := road.ParseOutcome(letter)
	if err != nil {
		return nil, fmt.Errorf("corrupt hand in shoe %s: %w", shoeID, err)
	}

	remaining, err := c.rdb.LLen(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count hands: %w", err)
	}

	event := &HandEvent{
		ID:          uuid.New().String(),
		ShoeID:      shoeID,
		Kind:        EventKindUndo,
		Number:      int(remaining) + 1,
		Outcome:     outcome,
		CreatedAtMs: time.Now().UnixMilli(),
	}
	if err := c.publishHandEvent(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// ShoeHands returns every outcome of a shoe in the order dealt.
// An unknown or empty shoe yields an empty slice.
func (c *Client) ShoeHands(ctx context.Context, shoeID string) ([]road.Outcome, error) {
	letters, err := c.rdb.LRange(ctx, ShoeKey(c.table, shoeID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read hands: %w", err)
	}

	hands := make([]road.Outcome, 0, len(letters))
	for i, letter := range letters {
		o, err := road.ParseOutcome(letter)
		if err != nil {
			return nil, fmt.Errorf("corrupt hand %d in shoe %s: %w", i+1, shoeID, err)
		}
		hands = append(hands, o)
	}
	return hands, nil
}

// ScanShoes returns the IDs of every shoe on this table whose ID starts with prefix.
// An empty prefix lists all shoes. Order is unspecified.
func (c *Client) ScanShoes(ctx context.Context, prefix string) ([]string, error) {
	base := ShoeInfoKey(c.table, "")
	match := base + prefix + "*"

	var ids []string
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, match, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan shoes: %w", err)
		}
		for _, key := range keys {
			ids = append(ids, strings.TrimPrefix(key, base))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return ids, nil
}

// PutSnapshot stores the latest scoreboard snapshot and publishes it.
// Validates the snapshot before writing.
func (c *Client) PutSnapshot(ctx context.Context, s *Snapshot) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}

	if err := c.rdb.HSet(ctx, SnapshotKey(c.table), SnapshotToHash(s)).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot to Redis: %w", err)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot for event: %w", err)
	}

	if err := c.rdb.Publish(ctx, SnapshotEventsChannel(c.table), data).Err(); err != nil {
		return fmt.Errorf("failed to publish snapshot event: %w", err)
	}

	return nil
}

// GetSnapshot returns the latest scoreboard snapshot.
// Returns (nil, redis.Nil) if no snapshot has been stored yet.
func (c *Client) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	hashData, err := c.rdb.HGetAll(ctx, SnapshotKey(c.table)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot from Redis: %w", err)
	}

	if len(hashData) == 0 {
		return nil, redis.Nil
	}

	s, err := HashToSnapshot(hashData)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize snapshot: %w", err)
	}
	return s, nil
}

func (c *Client) currentShoeOrErr(ctx context.Context) (string, error) {
	shoeID, err := c.CurrentShoe(ctx)
	if err != nil {
		if IsNotFound(err) {
			return "", ErrNoShoe
		}
		return "", err
	}
	return shoeID, nil
}

func (c *Client) publishHandEvent(ctx context.Context, event *HandEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal hand event: %w", err)
	}

	if err := c.rdb.Publish(ctx, HandEventsChannel(c.table), data).Err(); err != nil {
		return fmt.Errorf("failed to publish hand event: %w", err)
	}
	return nil
}

// IsNotFound returns true if the error is a Redis "key not found" error (redis.Nil).
func IsNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}
