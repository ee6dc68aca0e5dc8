package state

import "github.com/zoobzio/capitan"

// Pagination signals.
var (
	// PageChanged is emitted when the pagination cursor is set.
	PageChanged = capitan.NewSignal(
		"state.page.changed",
		"Pagination cursor changed",
	)
)

// Selection signals.
var (
	// CharacterSelected is emitted when a lookup by id finds a character.
	CharacterSelected = capitan.NewSignal(
		"state.character.selected",
		"Character selected",
	)

	// CharacterDeselected is emitted when the selection is cleared.
	CharacterDeselected = capitan.NewSignal(
		"state.character.deselected",
		"Character deselected",
	)
)

// Creation signals.
var (
	// CreateStarted is emitted when the create workflow begins.
	CreateStarted = capitan.NewSignal(
		"state.create.started",
		"Character creation started",
	)

	// CreateSucceeded is emitted when a created character is prepended.
	CreateSucceeded = capitan.NewSignal(
		"state.create.succeeded",
		"Character creation succeeded",
	)

	// CreateFailed is emitted when the creator returns an error.
	CreateFailed = capitan.NewSignal(
		"state.create.failed",
		"Character creation failed",
	)
)

// Field keys for state events.
var (
	// KeyPage is the pagination cursor.
	KeyPage = capitan.NewIntKey("page")

	// KeyCharacterID is the id of the affected character.
	KeyCharacterID = capitan.NewIntKey("character_id")

	// KeyCharacterName is the name of the affected character.
	KeyCharacterName = capitan.NewStringKey("character_name")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")
)
