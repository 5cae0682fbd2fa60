// Package road implements the baccarat scoreboard roads.
//
// The Big Road records Banker and Player wins as columns of consecutive
// same-side results on a fixed grid. The three derived roads (Big Eye,
// Small Road, Cockroach) read the Big Road's column history after every
// hand and write a Same or Chop signal depending on whether the newest
// result repeats or breaks the shape of earlier columns. A Peek previews
// those signals for a hypothetical next hand without changing anything,
// and the TieTracker annotates ties, which never reach the roads.
//
// Grid layout:
//
//	A run grows down its column until the next cell is past the bottom row
//	or already taken, then slides right along the row it stopped in. When a
//	run grows down onto an older tail of the same side the cell below is
//	rewritten to '='. Marks that land past the last writable column are
//	shown as a single '>' in an extra indicator column.
//
// Every mutation is journaled, so RemoveLast is an exact undo on every board.
// Types in this package are not safe for concurrent use.
package road
