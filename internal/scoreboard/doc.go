// Package scoreboard implements the scoreboard daemon: it follows a table's
// hand feed, keeps the roads in memory and publishes a snapshot after every
// hand, undo or new shoe.
package scoreboard
