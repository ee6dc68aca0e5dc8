package ui

// Package ui contains the Fyne-based desktop user interface. It renders
// snapshots of the shared character state (grid, pagination, details panel,
// creation form) and turns user actions into store calls. All UI strings are
// localized via Localization.
