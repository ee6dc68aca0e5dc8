package api

import (
	"math/rand/v2"

	"github.com/ytget/character-browser/internal/model"
)

// Placeholder values for simulated characters
const (
	DefaultFabricatedMinID   = 200
	DefaultFabricatedIDSpan  = 1000
	DefaultPlaceholderImage  = "https://rickandmortyapi.com/api/character/avatar/19.jpeg"
	DefaultPlaceholderSpecie = "Human"
	DefaultPlaceholderGender = "unknown"
	DefaultPlaceholderPlace  = "Earth"
)

// Fabricator synthesizes the character record returned by a simulated
// creation. Only name and status come from the submission; everything else
// is a placeholder. The submitted image is never referenced.
type Fabricator struct {
	MinID    int
	IDSpan   int
	Image    string
	Species  string
	Gender   string
	Origin   model.Place
	Location model.Place

	intn func(n int) int
}

// NewFabricator returns a fabricator with the stock placeholder values
func NewFabricator() *Fabricator {
	return &Fabricator{
		MinID:    DefaultFabricatedMinID,
		IDSpan:   DefaultFabricatedIDSpan,
		Image:    DefaultPlaceholderImage,
		Species:  DefaultPlaceholderSpecie,
		Gender:   DefaultPlaceholderGender,
		Origin:   model.Place{Name: DefaultPlaceholderPlace},
		Location: model.Place{Name: DefaultPlaceholderPlace},
		intn:     rand.IntN,
	}
}

// Fabricate builds a character from the payload.
// The id lies in [MinID, MinID+IDSpan).
func (f *Fabricator) Fabricate(payload CreatePayload) model.Character {
	return model.Character{
		ID:       f.nextID(),
		Name:     payload.Name,
		Image:    f.Image,
		Status:   payload.Status,
		Species:  f.Species,
		Gender:   f.Gender,
		Origin:   f.Origin,
		Location: f.Location,
	}
}

func (f *Fabricator) nextID() int {
	span := f.IDSpan
	if span <= 0 {
		span = DefaultFabricatedIDSpan
	}
	intn := f.intn
	if intn == nil {
		intn = rand.IntN
	}
	return f.MinID + intn(span)
}
