package feed

import "fmt"

// Redis key pattern helpers
//
// All keys and Pub/Sub channels are namespaced by table name so several tables
// can share one Redis server.
//
// Key pattern: roads:{table}:{entity}[:{uuid}]
// Channel pattern: roads:{table}:{event_type}_events

// CurrentShoeKey returns the key holding the ID of the shoe in progress.
// Pattern: roads:{table}:current_shoe
func CurrentShoeKey(table string) string {
	return fmt.Sprintf("roads:%s:current_shoe", table)
}

// ShoeKey returns the key of a shoe's hand list (one outcome letter per hand).
// Pattern: roads:{table}:shoe:{shoe_id}
func ShoeKey(table, shoeID string) string {
	return fmt.Sprintf("roads:%s:shoe:%s", table, shoeID)
}

// ShoeInfoKey returns the key of a shoe's metadata hash.
// Pattern: roads:{table}:shoe_info:{shoe_id}
func ShoeInfoKey(table, shoeID string) string {
	return fmt.Sprintf("roads:%s:shoe_info:%s", table, shoeID)
}

// SnapshotKey returns the key of the latest scoreboard snapshot hash.
// Pattern: roads:{table}:snapshot
func SnapshotKey(table string) string {
	return fmt.Sprintf("roads:%s:snapshot", table)
}

// HandEventsChannel returns the Pub/Sub channel for hand events.
// Pattern: roads:{table}:hand_events
func HandEventsChannel(table string) string {
	return fmt.Sprintf("roads:%s:hand_events", table)
}

// SnapshotEventsChannel returns the Pub/Sub channel for snapshot updates.
// Pattern: roads:{table}:snapshot_events
func SnapshotEventsChannel(table string) string {
	return fmt.Sprintf("roads:%s:snapshot_events", table)
}
