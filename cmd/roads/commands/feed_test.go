package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dyluth/roads/pkg/feed"
	"github.com/dyluth/roads/pkg/road"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedClient(t *testing.T, addr string) *feed.Client {
	t.Helper()
	client, err := feed.NewClient(&redis.Options{Addr: addr}, "test-table")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestShoeDealUndoReplay(t *testing.T) {
	ctx := context.Background()
	cfg, mr := setupRedisConfig(t)
	client := feedClient(t, mr.Addr())

	_, err := execute(t, "shoe", "-c", cfg)
	require.NoError(t, err)

	shoeID, err := client.CurrentShoe(ctx)
	require.NoError(t, err)

	_, err = execute(t, "deal", "-c", cfg, "PP", "B")
	require.NoError(t, err)

	hands, err := client.ShoeHands(ctx, shoeID)
	require.NoError(t, err)
	assert.Equal(t, "PPB", lettersOf(hands))

	_, err = execute(t, "undo", "-c", cfg)
	require.NoError(t, err)

	hands, err = client.ShoeHands(ctx, shoeID)
	require.NoError(t, err)
	assert.Equal(t, "PP", lettersOf(hands))

	t.Run("replay current shoe", func(t *testing.T) {
		out, err := execute(t, "replay", "-c", cfg, "--summary")
		require.NoError(t, err)
		assert.Contains(t, out, "Shoe "+shoeID[:8]+" on table 'test-table' (2 hands")
		assert.Contains(t, out, " R0\n")
		assert.Contains(t, out, "Summary of 2 hands:")
	})

	t.Run("replay by prefix", func(t *testing.T) {
		out, err := execute(t, "replay", "-c", cfg, shoeID[:8])
		require.NoError(t, err)
		assert.Contains(t, out, "Shoe "+shoeID[:8])
	})

	t.Run("replay unknown prefix", func(t *testing.T) {
		_, err := execute(t, "replay", "-c", cfg, "ffffffff")
		require.Error(t, err)
		assert.Equal(t, "shoe not found", err.Error())
	})

	t.Run("replay short prefix", func(t *testing.T) {
		_, err := execute(t, "replay", "-c", cfg, "abc")
		require.Error(t, err)
		assert.Equal(t, "invalid shoe ID", err.Error())
	})

	t.Run("list shoes", func(t *testing.T) {
		out, err := execute(t, "shoe", "-c", cfg, "--list")
		require.NoError(t, err)
		assert.Contains(t, out, "Shoe "+shoeID[:8])
	})
}

func TestDeal_NoShoe(t *testing.T) {
	cfg, _ := setupRedisConfig(t)

	_, err := execute(t, "deal", "-c", cfg, "B")
	require.Error(t, err)
	assert.Equal(t, "no shoe in progress", err.Error())
}

func TestDeal_InvalidOutcome(t *testing.T) {
	cfg, _ := setupRedisConfig(t)

	_, err := execute(t, "deal", "-c", cfg, "X")
	require.Error(t, err)
	assert.Equal(t, "invalid outcome", err.Error())
}

func TestUndo_Errors(t *testing.T) {
	cfg, _ := setupRedisConfig(t)

	_, err := execute(t, "undo", "-c", cfg)
	require.Error(t, err)
	assert.Equal(t, "no shoe in progress", err.Error())

	_, err = execute(t, "shoe", "-c", cfg)
	require.NoError(t, err)

	_, err = execute(t, "undo", "-c", cfg)
	require.Error(t, err)
	assert.Equal(t, "nothing to undo", err.Error())
}

func TestShoeList_Empty(t *testing.T) {
	cfg, _ := setupRedisConfig(t)

	out, err := execute(t, "shoe", "-c", cfg, "--list")
	require.NoError(t, err)
	assert.Equal(t, "No shoes found for table 'test-table'\n", out)
}

func TestRedisUnavailable(t *testing.T) {
	_, cfg := startAndStop(t)

	_, err := execute(t, "shoe", "-c", cfg)
	require.Error(t, err)
	assert.Equal(t, "Redis unavailable", err.Error())
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "init", dir, "--table", "vip-2")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully initialized")

	data, err := os.ReadFile(filepath.Join(dir, "roads.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: vip-2")

	_, err = execute(t, "init", dir)
	require.Error(t, err)
	assert.Equal(t, "already initialized", err.Error())

	_, err = execute(t, "init", dir, "--force", "--width", "5")
	require.Error(t, err)
	assert.Equal(t, "initialization failed", err.Error())

	_, err = execute(t, "init", dir, "--force")
	require.NoError(t, err)
}

// startAndStop returns a config for a Redis server that is no longer running.
func startAndStop(t *testing.T) (string, string) {
	t.Helper()
	cfg, mr := setupRedisConfig(t)
	addr := mr.Addr()
	mr.Close()
	return addr, cfg
}

func lettersOf(hands []road.Outcome) string {
	s := ""
	for _, h := range hands {
		s += h.String()
	}
	return s
}
