// Package ui implements terminal presentation for comparison results.
//
// [SummaryTable] renders the seven headline counts as a lipgloss table for plain command output.
//
// The interactive browser ([Model], started with [Run]) uses bubbletea's Elm architecture with two views:
//  1. [ListView] : One filterable list per category (both, only new, only old), switched with tab/shift+tab
//  2. [SummaryView] : Source paths and the summary table, toggled with s
//
// The browser is read-only and writes no report. Keyboard navigation uses vim-style bindings (j/k, h/l, q)
// with contextual help displayed via charmbracelet/bubbles/help.
package ui
