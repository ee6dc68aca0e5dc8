package api

// Package api implements the data access client for the character API.
// It fetches pages and single records, simulates character creation against
// a fire-and-forget sink, and normalizes transport failures into FetchError.
