package model

import (
	"errors"
	"strings"
)

// Place is a named location reference (origin or last known location)
type Place struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Character represents a single character record as served by the API.
// Values are never mutated after decoding; a new page or a simulated
// creation replaces them wholesale.
type Character struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Status   Status `json:"status"`
	Species  string `json:"species"`
	Gender   string `json:"gender"`
	Origin   Place  `json:"origin"`
	Location Place  `json:"location"`
}

// DisplayStatus returns the status shown on cards, "unknown" when missing
func (c Character) DisplayStatus() string {
	if c.Status == "" {
		return StatusUnknown.String()
	}
	return c.Status.String()
}

// PageInfo carries the pagination envelope of a listing response
type PageInfo struct {
	Count int    `json:"count"`
	Pages int    `json:"pages"`
	Next  string `json:"next,omitempty"`
	Prev  string `json:"prev,omitempty"`
}

// CharacterPage is one page of the character listing
type CharacterPage struct {
	Info    PageInfo    `json:"info"`
	Results []Character `json:"results"`
}

// ImageFile is an in-memory image picked by the user
type ImageFile struct {
	Name string
	Data []byte
}

// Size returns the image size in bytes
func (f *ImageFile) Size() int64 {
	if f == nil {
		return 0
	}
	return int64(len(f.Data))
}

// Validation errors for the creation form
var (
	ErrNameRequired  = errors.New("name is required")
	ErrImageRequired = errors.New("image file is required")
)

// NewCharacterData is the transient input of the creation flow
type NewCharacterData struct {
	Name      string
	Status    Status
	ImageFile *ImageFile
}

// NewCharacterDraft returns the form defaults: empty name, unknown status, no image
func NewCharacterDraft() NewCharacterData {
	return NewCharacterData{Status: StatusUnknown}
}

// Validate checks the fields the form requires before submission
func (d NewCharacterData) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameRequired
	}
	if d.ImageFile == nil {
		return ErrImageRequired
	}
	return nil
}

// EffectiveStatus returns the submitted status, defaulting to unknown
func (d NewCharacterData) EffectiveStatus() Status {
	if d.Status == "" {
		return StatusUnknown
	}
	return d.Status
}
