// Package tui implements the interactive test picker of viavictl.
//
// The picker is a Bubble Tea program built around the bubbles list
// component. It shows every catalog entry with its description (or the
// campaign file name when there is none), supports the list's built-in
// filtering with /, and ends either with a chosen test (enter) or an
// abort (q, esc, ctrl+c).
package tui
