package model

// Package model defines domain data structures used across the app:
// characters as served by the API, page envelopes, the creation draft, and
// read-only snapshots of application state handed to the UI.
