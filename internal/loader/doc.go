package loader

// Package loader keeps the character collection in sync with the
// pagination cursor. Each page change starts a fetch; responses that were
// superseded by a newer request are dropped.
