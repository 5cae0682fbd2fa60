// Package feed carries a baccarat table's outcomes and scoreboard state over Redis.
//
// # Overview
//
// Dealers (or the roads CLI) append each hand's outcome to the current shoe. Every
// change is published as a HandEvent; the scoreboard daemon consumes those events,
// keeps the roads up to date and publishes a Snapshot that displays subscribe to.
//
// # Redis Schema
//
// All keys follow the pattern roads:{table}:{entity}[:{uuid}]
//
//	Current shoe:  roads:{table}:current_shoe          (string, shoe UUID)
//	Shoe hands:    roads:{table}:shoe:{shoe_id}        (list of "B", "P", "T")
//	Shoe metadata: roads:{table}:shoe_info:{shoe_id}   (hash)
//	Snapshot:      roads:{table}:snapshot              (hash)
//
// Pub/Sub channels:
//
//	Hand events:     roads:{table}:hand_events
//	Snapshot events: roads:{table}:snapshot_events
//
// # Usage Example
//
//	client, err := feed.NewClient(&redis.Options{Addr: "localhost:6379"}, "baccarat-1")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	shoe, err := client.StartShoe(ctx)
//	...
//	event, err := client.RecordHand(ctx, road.Banker)
//	// event.Number == 1, event.ShoeID == shoe.ID
//
// Pub/Sub delivery is at-most-once. The shoe's hand list is the source of truth;
// consumers that start late replay it with ShoeHands.
package feed
