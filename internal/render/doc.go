// Package render turns snapshots into a visual tree of container, label and
// value nodes. The tree carries no styling; the view layer decides how each
// [Kind] and role is drawn.
package render
