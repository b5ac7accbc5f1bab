// Package viz is the terminal view layer for the array walkthrough.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: steps through a [player.Session] and draws the current card
//   - [Materialize]: turns a render tree into lipgloss-styled text
//   - [Graph]: asciigraph plot of a snapshot's numeric sequences
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	→/l/n   - Next step
//	←/h/p   - Previous step
//	Space/A - Toggle auto-play
//	R       - Reset to first step (stops auto-play)
//	G       - Toggle graph panel
//	T       - Cycle color themes
//	?       - Show help
//
// Auto-play ticks carry the token of the run that scheduled them, so a tick
// that arrives after auto-play was stopped does nothing.
package viz
