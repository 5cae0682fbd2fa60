package scoreboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/dyluth/roads/internal/table"
	"github.com/dyluth/roads/pkg/feed"
	"github.com/dyluth/roads/pkg/road"
)

// Engine keeps the roads of one table in step with its hand feed and
// publishes a snapshot after every change.
type Engine struct {
	client       *feed.Client
	healthServer *HealthServer

	mu     sync.Mutex
	tbl    *table.Table
	shoeID string
}

// NewEngine creates a scoreboard for the client's table.
// An empty healthAddr disables the HTTP server.
func NewEngine(client *feed.Client, size road.Size, healthAddr string) (*Engine, error) {
	tbl, err := table.New(size)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		client: client,
		tbl:    tbl,
	}
	if healthAddr != "" {
		e.healthServer = NewHealthServer(healthAddr, client, e)
	}
	return e, nil
}

// Run replays the current shoe, then follows hand events until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	if e.healthServer != nil {
		if err := e.healthServer.Start(); err != nil {
			return fmt.Errorf("failed to start health server: %w", err)
		}
		defer e.healthServer.Shutdown(context.Background())
		log.Printf("[Scoreboard] Health server listening on %s", e.healthServer.Addr())
	}

	log.Printf("[Scoreboard] Starting for table '%s'", e.client.Table())

	// Subscribe before replaying so nothing dealt in between is lost;
	// events already covered by the replay are skipped by hand number.
	subscription, err := e.client.SubscribeHandEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to hand events: %w", err)
	}
	defer subscription.Close()

	if err := e.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore current shoe: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("[Scoreboard] Shutting down...")
			return nil

		case event, ok := <-subscription.Events():
			if !ok {
				log.Printf("[Scoreboard] Subscription closed")
				return nil
			}

			if err := e.HandleEvent(ctx, event); err != nil {
				log.Printf("[Scoreboard] Error processing event %s: %v", event.ID, err)
			}

		case err, ok := <-subscription.Errors():
			if !ok {
				log.Printf("[Scoreboard] Error channel closed")
				return nil
			}
			log.Printf("[Scoreboard] Subscription error: %v", err)
		}
	}
}

// Restore rebuilds the roads from the stored hands of the current shoe and
// publishes a snapshot. With no shoe started yet the roads are left empty.
func (e *Engine) Restore(ctx context.Context) error {
	shoeID, err := e.client.CurrentShoe(ctx)
	if err != nil {
		if feed.IsNotFound(err) {
			e.logEvent("no_shoe", map[string]interface{}{})
			return nil
		}
		return err
	}

	hands, err := e.client.ShoeHands(ctx, shoeID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.tbl.NewShoe()
	e.tbl.ApplyAll(hands)
	e.shoeID = shoeID
	e.mu.Unlock()

	e.logEvent("shoe_restored", map[string]interface{}{
		"shoe_id": shoeID,
		"hands":   len(hands),
	})

	return e.publish(ctx)
}

// HandleEvent applies one hand event to the roads and publishes the result.
// Events for another shoe and events already applied are ignored; a gap in
// hand numbers triggers a full restore.
func (e *Engine) HandleEvent(ctx context.Context, event *feed.HandEvent) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("invalid hand event: %w", err)
	}

	e.mu.Lock()
	changed, resync := e.applyLocked(event)
	hands := e.tbl.Len()
	e.mu.Unlock()

	switch {
	case resync:
		e.logEvent("resync", map[string]interface{}{
			"shoe_id": event.ShoeID,
			"kind":    string(event.Kind),
			"number":  event.Number,
			"hands":   hands,
		})
		return e.Restore(ctx)
	case !changed:
		e.logEvent("event_skipped", map[string]interface{}{
			"shoe_id": event.ShoeID,
			"kind":    string(event.Kind),
			"number":  event.Number,
		})
		return nil
	}

	e.logEvent("event_applied", map[string]interface{}{
		"shoe_id": event.ShoeID,
		"kind":    string(event.Kind),
		"number":  event.Number,
		"outcome": event.Outcome.String(),
		"hands":   hands,
	})
	return e.publish(ctx)
}

func (e *Engine) applyLocked(event *feed.HandEvent) (changed, resync bool) {
	if event.Kind == feed.EventKindNewShoe {
		if event.ShoeID == e.shoeID {
			return false, false
		}
		e.tbl.NewShoe()
		e.shoeID = event.ShoeID
		return true, false
	}

	if event.ShoeID != e.shoeID {
		return false, false
	}

	n := e.tbl.Len()
	switch event.Kind {
	case feed.EventKindHand:
		switch {
		case event.Number <= n:
			return false, false
		case event.Number > n+1:
			return false, true
		}
		_, ok := e.tbl.Apply(event.Outcome)
		return ok, false

	case feed.EventKindUndo:
		switch {
		case event.Number == n+1:
			return false, false
		case event.Number != n:
			return false, true
		}
		_, ok := e.tbl.RemoveLast()
		return ok, false
	}

	return false, false
}

// Snapshot captures the current roads. Returns nil before the first shoe.
func (e *Engine) Snapshot() *feed.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.shoeID == "" {
		return nil
	}

	banker, player, ties := e.tbl.Counts()
	return &feed.Snapshot{
		Table:       e.client.Table(),
		ShoeID:      e.shoeID,
		Hands:       e.tbl.Len(),
		Banker:      banker,
		Player:      player,
		Ties:        ties,
		BigRoad:     e.tbl.BigRoadText(),
		BigEye:      e.tbl.DerivedText(road.BigEye),
		SmallRoad:   e.tbl.DerivedText(road.SmallRoad),
		Cockroach:   e.tbl.DerivedText(road.Cockroach),
		TieLine:     e.tbl.TieLine(),
		PeekBanker:  e.tbl.Preview(road.Banker).String(),
		PeekPlayer:  e.tbl.Preview(road.Player).String(),
		UpdatedAtMs: time.Now().UnixMilli(),
	}
}

// WriteRoads renders every board of the current shoe. Implements RoadsWriter.
func (e *Engine) WriteRoads(w io.Writer) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.shoeID == "" {
		_, err := fmt.Fprintln(w, "No shoe in progress")
		return err
	}

	if _, err := fmt.Fprintf(w, "Table %s shoe %s hand %d\n", e.client.Table(), e.shoeID, e.tbl.Len()); err != nil {
		return err
	}
	return e.tbl.Render(w, true)
}

func (e *Engine) publish(ctx context.Context) error {
	snapshot := e.Snapshot()
	if snapshot == nil {
		return nil
	}

	if err := e.client.PutSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}
	return nil
}

// logEvent writes one structured JSON log line.
func (e *Engine) logEvent(eventType string, data map[string]interface{}) {
	data["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	data["level"] = "info"
	data["component"] = "scoreboard"
	data["event_type"] = eventType
	data["table"] = e.client.Table()

	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("[Scoreboard] Failed to marshal log event: %v", err)
		return
	}

	log.Println(string(jsonData))
}
