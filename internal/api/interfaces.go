package api

import (
	"context"

	"github.com/ytget/character-browser/internal/model"
)

// PageFetcher retrieves one page of the character listing.
type PageFetcher interface {
	FetchPage(ctx context.Context, page int) (*model.CharacterPage, error)
}

// Creator submits a new character and returns the resulting record.
type Creator interface {
	CreateRemote(ctx context.Context, payload CreatePayload) (*model.Character, error)
}

// CharacterSource defines the full data access surface.
type CharacterSource interface {
	PageFetcher
	Creator
	FetchByID(ctx context.Context, id int) (*model.Character, error)
}
