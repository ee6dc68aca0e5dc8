package state

// Package state holds the shared application state: the character
// collection with its selection, the pagination cursor, and the creation
// flag. Store composes the slices, owns all mutation, and notifies the UI
// and the loader after each change.
