package scoreboard

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dyluth/roads/pkg/feed"
	"github.com/dyluth/roads/pkg/road"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestClient(t *testing.T) (*feed.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := feed.NewClient(&redis.Options{Addr: mr.Addr()}, "test-table")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func newTestEngine(t *testing.T, client *feed.Client) *Engine {
	t.Helper()
	e, err := NewEngine(client, road.DefaultSize, "")
	require.NoError(t, err)
	return e
}

func deal(t *testing.T, client *feed.Client, outcomes ...road.Outcome) []*feed.HandEvent {
	t.Helper()
	var events []*feed.HandEvent
	for _, o := range outcomes {
		ev, err := client.RecordHand(context.Background(), o)
		require.NoError(t, err)
		events = append(events, ev)
	}
	return events
}

func handEvent(shoeID string, kind feed.EventKind, number int, o road.Outcome) *feed.HandEvent {
	return &feed.HandEvent{
		ID:          uuid.New().String(),
		ShoeID:      shoeID,
		Kind:        kind,
		Number:      number,
		Outcome:     o,
		CreatedAtMs: time.Now().UnixMilli(),
	}
}

func TestNewEngine_InvalidSize(t *testing.T) {
	client, _ := setupTestClient(t)
	_, err := NewEngine(client, road.Size{Height: 0, Width: 60}, "")
	require.Error(t, err)
}

func TestRestore_NoShoe(t *testing.T) {
	ctx := context.Background()
	client, _ := setupTestClient(t)
	e := newTestEngine(t, client)

	require.NoError(t, e.Restore(ctx))
	assert.Nil(t, e.Snapshot())

	_, err := client.GetSnapshot(ctx)
	assert.True(t, feed.IsNotFound(err))

	var buf bytes.Buffer
	require.NoError(t, e.WriteRoads(&buf))
	assert.Equal(t, "No shoe in progress\n", buf.String())
}

func TestRestore_ReplaysCurrentShoe(t *testing.T) {
	ctx := context.Background()
	client, _ := setupTestClient(t)

	shoe, err := client.StartShoe(ctx)
	require.NoError(t, err)
	deal(t, client, road.Player, road.Player, road.Banker, road.Tie, road.Banker, road.Player)

	e := newTestEngine(t, client)
	require.NoError(t, e.Restore(ctx))

	snap, err := client.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, shoe.ID, snap.ShoeID)
	assert.Equal(t, "test-table", snap.Table)
	assert.Equal(t, 6, snap.Hands)
	assert.Equal(t, 2, snap.Banker)
	assert.Equal(t, 3, snap.Player)
	assert.Equal(t, 1, snap.Ties)
	assert.Contains(t, snap.BigRoad, " R0\n")
	assert.Contains(t, snap.BigEye, " R1\n")
	assert.Contains(t, snap.SmallRoad, " R2\n")
	assert.Contains(t, snap.Cockroach, " R3\n")
	assert.Equal(t, "Ties(s)", snap.TieLine)
	assert.Len(t, snap.PeekBanker, 3)
	assert.Len(t, snap.PeekPlayer, 3)
}

func TestHandleEvent(t *testing.T) {
	ctx := context.Background()
	client, _ := setupTestClient(t)

	shoe, err := client.StartShoe(ctx)
	require.NoError(t, err)

	e := newTestEngine(t, client)
	require.NoError(t, e.Restore(ctx))

	t.Run("hand is applied and published", func(t *testing.T) {
		require.NoError(t, e.HandleEvent(ctx, handEvent(shoe.ID, feed.EventKindHand, 1, road.Banker)))
		snap, err := client.GetSnapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, snap.Hands)
		assert.Equal(t, 1, snap.Banker)
	})

	t.Run("duplicate hand is skipped", func(t *testing.T) {
		require.NoError(t, e.HandleEvent(ctx, handEvent(shoe.ID, feed.EventKindHand, 1, road.Banker)))
		assert.Equal(t, 1, e.Snapshot().Hands)
	})

	t.Run("other shoe is ignored", func(t *testing.T) {
		require.NoError(t, e.HandleEvent(ctx, handEvent(uuid.New().String(), feed.EventKindHand, 2, road.Player)))
		assert.Equal(t, 1, e.Snapshot().Hands)
	})

	t.Run("undo removes the last hand", func(t *testing.T) {
		require.NoError(t, e.HandleEvent(ctx, handEvent(shoe.ID, feed.EventKindHand, 2, road.Player)))
		require.Equal(t, 2, e.Snapshot().Hands)

		require.NoError(t, e.HandleEvent(ctx, handEvent(shoe.ID, feed.EventKindUndo, 2, road.Player)))
		snap := e.Snapshot()
		assert.Equal(t, 1, snap.Hands)
		assert.Equal(t, 0, snap.Player)

		// repeated undo of the same hand is a no-op
		require.NoError(t, e.HandleEvent(ctx, handEvent(shoe.ID, feed.EventKindUndo, 2, road.Player)))
		assert.Equal(t, 1, e.Snapshot().Hands)
	})

	t.Run("new shoe resets the roads", func(t *testing.T) {
		next := uuid.New().String()
		require.NoError(t, e.HandleEvent(ctx, handEvent(next, feed.EventKindNewShoe, 0, 0)))
		snap := e.Snapshot()
		assert.Equal(t, next, snap.ShoeID)
		assert.Equal(t, 0, snap.Hands)
	})

	t.Run("invalid event is rejected", func(t *testing.T) {
		err := e.HandleEvent(ctx, &feed.HandEvent{ID: "nope"})
		require.Error(t, err)
	})
}

func TestHandleEvent_GapTriggersRestore(t *testing.T) {
	ctx := context.Background()
	client, _ := setupTestClient(t)

	shoe, err := client.StartShoe(ctx)
	require.NoError(t, err)

	e := newTestEngine(t, client)
	require.NoError(t, e.Restore(ctx))

	// Three hands land in Redis but only the last event reaches the engine
	events := deal(t, client, road.Banker, road.Banker, road.Player)
	require.NoError(t, e.HandleEvent(ctx, events[2]))

	snap := e.Snapshot()
	assert.Equal(t, shoe.ID, snap.ShoeID)
	assert.Equal(t, 3, snap.Hands)
	assert.Equal(t, 2, snap.Banker)
}

func TestRun_FollowsFeed(t *testing.T) {
	client, _ := setupTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupCtx := context.Background()
	_, err := client.StartShoe(setupCtx)
	require.NoError(t, err)
	deal(t, client, road.Player)

	e := newTestEngine(t, client)
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	require.Eventually(t, func() bool {
		snap, err := client.GetSnapshot(setupCtx)
		return err == nil && snap.Hands == 1
	}, 2*time.Second, 10*time.Millisecond)

	deal(t, client, road.Banker, road.Banker)
	require.Eventually(t, func() bool {
		snap, err := client.GetSnapshot(setupCtx)
		return err == nil && snap.Hands == 3 && snap.Banker == 2
	}, 2*time.Second, 10*time.Millisecond)

	_, err = client.UndoHand(setupCtx)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		snap, err := client.GetSnapshot(setupCtx)
		return err == nil && snap.Hands == 2
	}, 2*time.Second, 10*time.Millisecond)

	next, err := client.StartShoe(setupCtx)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		snap, err := client.GetSnapshot(setupCtx)
		return err == nil && snap.ShoeID == next.ID && snap.Hands == 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not stop after cancel")
	}
}

func TestWriteRoads(t *testing.T) {
	ctx := context.Background()
	client, _ := setupTestClient(t)

	shoe, err := client.StartShoe(ctx)
	require.NoError(t, err)
	deal(t, client, road.Banker, road.Player)

	e := newTestEngine(t, client)
	require.NoError(t, e.Restore(ctx))

	var buf bytes.Buffer
	require.NoError(t, e.WriteRoads(&buf))
	out := buf.String()
	assert.Contains(t, out, "Table test-table shoe "+shoe.ID+" hand 2\n")
	assert.Contains(t, out, " R0\n")
	assert.Contains(t, out, " R3\n")
	assert.Contains(t, out, "Peek B(")
}
