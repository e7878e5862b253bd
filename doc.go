// Package styledstr provides an in-memory model of styled terminal text —
// text paired with style spans — and the parsers, serializers, diff engine,
// and line renderer built on top of it.
//
// A StyledString (owned) or StyledView (borrowed) pairs a text buffer with
// non-overlapping Span runs, each carrying a Style of text effects plus an
// optional foreground and background Color. Two parsers build styled text:
// ParseRich reads the bracketed rich-markup grammar ("[[bold red]]text"),
// and ParseAnsi reads a raw ANSI/SGR byte stream as a terminal would
// interpret it. FormatRich and FormatAnsi serialize back to each form.
//
// Diff compares two styled renders of identical text and reports where
// their styling differs, suppressing differences invisible on whitespace.
// RenderLines hard-wraps styled text to a maximum display width, splitting
// only at grapheme cluster boundaries.
//
// This package is the data-plane library behind a snapshot-testing
// toolkit: capturing a program's styled terminal output, comparing it
// against a saved expectation, and rendering a human-readable diff when
// they disagree. It does not spawn processes, read or write snapshot
// files, or parse command-line arguments — see the console, table, panel,
// and report packages for the terminal-facing and report-assembly layers
// built on top of it.
package styledstr
