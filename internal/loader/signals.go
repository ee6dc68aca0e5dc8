package loader

import "github.com/zoobzio/capitan"

// Loader signals.
var (
	// PageRequested is emitted when a page fetch starts.
	PageRequested = capitan.NewSignal(
		"loader.page.requested",
		"Page fetch started",
	)

	// PageLoaded is emitted when a page was applied to the state.
	PageLoaded = capitan.NewSignal(
		"loader.page.loaded",
		"Page applied to state",
	)

	// PageFailed is emitted when the latest page fetch failed.
	PageFailed = capitan.NewSignal(
		"loader.page.failed",
		"Page fetch failed",
	)

	// PageDiscarded is emitted when a superseded response is dropped.
	PageDiscarded = capitan.NewSignal(
		"loader.page.discarded",
		"Superseded page response dropped",
	)
)

// Field keys for loader events.
var (
	// KeyPage is the requested page.
	KeyPage = capitan.NewIntKey("page")

	// KeySequence is the request sequence number.
	KeySequence = capitan.NewIntKey("sequence")

	// KeyTotalPages is the page count reported by the API.
	KeyTotalPages = capitan.NewIntKey("total_pages")

	// KeyResults is the number of characters on the page.
	KeyResults = capitan.NewIntKey("results")

	// KeyError is the error message when a fetch fails.
	KeyError = capitan.NewStringKey("error")
)
