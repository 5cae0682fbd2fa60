package feed

import (
	"fmt"

	"github.com/dyluth/roads/pkg/road"
	"github.com/google/uuid"
)

// EventKind says what a HandEvent did to the shoe.
type EventKind string

const (
	// EventKindHand means a hand was appended to the shoe
	EventKindHand EventKind = "hand"

	// EventKindUndo means the last hand of the shoe was removed
	EventKindUndo EventKind = "undo"

	// EventKindNewShoe means a new shoe was started and is now current
	EventKindNewShoe EventKind = "new_shoe"
)

// HandEvent is published on the hand events channel every time the shoe changes.
type HandEvent struct {
	ID          string       `json:"id"`                // UUID of this event
	ShoeID      string       `json:"shoe_id"`           // UUID of the shoe the event belongs to
	Kind        EventKind    `json:"kind"`              // What happened
	Number      int          `json:"number"`            // 1-based hand number added or removed, 0 for new_shoe
	Outcome     road.Outcome `json:"outcome,omitempty"` // Outcome added or removed, empty for new_shoe
	CreatedAtMs int64        `json:"created_at_ms"`     // Unix timestamp in milliseconds
}

// Shoe describes one shoe played at a table.
type Shoe struct {
	ID          string `json:"id"`
	Table       string `json:"table"`
	StartedAtMs int64  `json:"started_at_ms"`
	Hands       int    `json:"hands"` // Not stored; filled from the shoe's hand list on read
}

// Snapshot is the scoreboard state published after every change.
// Boards are stored rendered, ready for display.
type Snapshot struct {
	Table       string `json:"table"`
	ShoeID      string `json:"shoe_id"`
	Hands       int    `json:"hands"`
	Banker      int    `json:"banker"`
	Player      int    `json:"player"`
	Ties        int    `json:"ties"`
	BigRoad     string `json:"big_road"`
	BigEye      string `json:"big_eye"`
	SmallRoad   string `json:"small_road"`
	Cockroach   string `json:"cockroach"`
	TieLine     string `json:"tie_line"`
	PeekBanker  string `json:"peek_banker"`
	PeekPlayer  string `json:"peek_player"`
	UpdatedAtMs int64  `json:"updated_at_ms"`
}

// Validate checks if the EventKind is a valid enum value.
func (k EventKind) Validate() error {
	switch k {
	case EventKindHand, EventKindUndo, EventKindNewShoe:
		return nil
	default:
		return fmt.Errorf("unknown event kind: %q", k)
	}
}

// Validate checks if the HandEvent has valid field values.
func (e *HandEvent) Validate() error {
	if !isValidUUID(e.ID) {
		return fmt.Errorf("invalid event ID: not a valid UUID")
	}

	if !isValidUUID(e.ShoeID) {
		return fmt.Errorf("invalid shoe ID: not a valid UUID")
	}

	if err := e.Kind.Validate(); err != nil {
		return fmt.Errorf("invalid kind: %w", err)
	}

	if e.Kind == EventKindNewShoe {
		return nil
	}

	if e.Number < 1 {
		return fmt.Errorf("invalid hand number: must be >= 1, got %d", e.Number)
	}

	if !e.Outcome.Valid() {
		return fmt.Errorf("invalid outcome for %s event", e.Kind)
	}

	return nil
}

// Validate checks if the Shoe has valid field values.
func (s *Shoe) Validate() error {
	if !isValidUUID(s.ID) {
		return fmt.Errorf("invalid shoe ID: not a valid UUID")
	}

	if s.Table == "" {
		return fmt.Errorf("table cannot be empty")
	}

	return nil
}

// Validate checks that the snapshot's tallies are consistent.
func (s *Snapshot) Validate() error {
	if s.Table == "" {
		return fmt.Errorf("table cannot be empty")
	}

	if !isValidUUID(s.ShoeID) {
		return fmt.Errorf("invalid shoe ID: not a valid UUID")
	}

	if s.Banker < 0 || s.Player < 0 || s.Ties < 0 {
		return fmt.Errorf("outcome counts cannot be negative")
	}

	if s.Banker+s.Player+s.Ties != s.Hands {
		return fmt.Errorf("outcome counts (%d) do not add up to hands (%d)", s.Banker+s.Player+s.Ties, s.Hands)
	}

	return nil
}

func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
