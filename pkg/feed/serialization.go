package feed

import (
	"fmt"
	"strconv"
)

// Serialization helpers for converting between Go structs and Redis hashes.
// Rendered boards are multi-line strings and are stored as-is.

// ShoeToHash converts a Shoe to a Redis hash. Hands is derived, not stored.
func ShoeToHash(s *Shoe) map[string]interface{} {
	return map[string]interface{}{
		"id":            s.ID,
		"table":         s.Table,
		"started_at_ms": s.StartedAtMs,
	}
}

// HashToShoe converts a Redis hash to a Shoe.
func HashToShoe(hash map[string]string) (*Shoe, error) {
	startedAtMs, err := strconv.ParseInt(hash["started_at_ms"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid started_at_ms field: %w", err)
	}

	return &Shoe{
		ID:          hash["id"],
		Table:       hash["table"],
		StartedAtMs: startedAtMs,
	}, nil
}

// SnapshotToHash converts a Snapshot to a Redis hash.
func SnapshotToHash(s *Snapshot) map[string]interface{} {
	return map[string]interface{}{
		"table":         s.Table,
		"shoe_id":       s.ShoeID,
		"hands":         s.Hands,
		"banker":        s.Banker,
		"player":        s.Player,
		"ties":          s.Ties,
		"big_road":      s.BigRoad,
		"big_eye":       s.BigEye,
		"small_road":    s.SmallRoad,
		"cockroach":     s.Cockroach,
		"tie_line":      s.TieLine,
		"peek_banker":   s.PeekBanker,
		"peek_player":   s.PeekPlayer,
		"updated_at_ms": s.UpdatedAtMs,
	}
}

// HashToSnapshot converts a Redis hash to a Snapshot.
func HashToSnapshot(hash map[string]string) (*Snapshot, error) {
	ints := map[string]*int{}
	s := &Snapshot{
		Table:      hash["table"],
		ShoeID:     hash["shoe_id"],
		BigRoad:    hash["big_road"],
		BigEye:     hash["big_eye"],
		SmallRoad:  hash["small_road"],
		Cockroach:  hash["cockroach"],
		TieLine:    hash["tie_line"],
		PeekBanker: hash["peek_banker"],
		PeekPlayer: hash["peek_player"],
	}
	ints["hands"] = &s.Hands
	ints["banker"] = &s.Banker
	ints["player"] = &s.Player
	ints["ties"] = &s.Ties

	for field, dst := range ints {
		n, err := strconv.Atoi(hash[field])
		if err != nil {
			return nil, fmt.Errorf("invalid %s field: %w", field, err)
		}
		*dst = n
	}

	// updated_at_ms is optional
	s.UpdatedAtMs, _ = strconv.ParseInt(hash["updated_at_ms"], 10, 64)

	return s, nil
}
