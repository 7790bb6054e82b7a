// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a two-view workflow for browsing the extracted repertoire:
//  1. [WorkListView] : Browse stored works
//  2. [RightHolderListView] : Inspect the right holders of a selected work
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Data is loaded from the repositories via tea commands so the interface never
// blocks on database reads.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
