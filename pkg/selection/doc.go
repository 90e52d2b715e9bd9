// Package selection tracks the edges a player has selected and decides
// which further edges may join them.
//
// A [Tracker] is a two-state machine. While [Open], the selection grows one
// connected edge at a time; as soon as the selected edges close a chain it
// becomes [Closed] and only deselection, removal or reset can follow.
// Refused toggles return coded errors from pkg/errors and never change the
// selection.
package selection
