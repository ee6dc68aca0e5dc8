package state

import "github.com/ytget/character-browser/internal/model"

// Collection holds the visible characters and the current selection.
// It is not safe for concurrent use; Store serializes access.
type Collection struct {
	characters []model.Character
	selected   *model.Character
}

// Set replaces the characters wholesale. No validation is done.
func (c *Collection) Set(list []model.Character) {
	c.characters = cloneCharacters(list)
}

// Prepend inserts a character at index 0
func (c *Collection) Prepend(character model.Character) {
	next := make([]model.Character, 0, len(c.characters)+1)
	next = append(next, character)
	c.characters = append(next, c.characters...)
}

// Select looks up the first character with the given id and keeps a copy of
// it as the selection. Returns false and leaves the selection untouched when
// no character matches.
func (c *Collection) Select(id int) bool {
	for _, character := range c.characters {
		if character.ID == id {
			selected := character
			c.selected = &selected
			return true
		}
	}
	return false
}

// Deselect clears the selection unconditionally
func (c *Collection) Deselect() {
	c.selected = nil
}

// Characters returns a copy of the characters
func (c *Collection) Characters() []model.Character {
	return cloneCharacters(c.characters)
}

// Selected returns a copy of the selected character, or nil
func (c *Collection) Selected() *model.Character {
	if c.selected == nil {
		return nil
	}
	selected := *c.selected
	return &selected
}

// Len returns the number of characters
func (c *Collection) Len() int {
	return len(c.characters)
}

func cloneCharacters(list []model.Character) []model.Character {
	if list == nil {
		return []model.Character{}
	}
	out := make([]model.Character, len(list))
	copy(out, list)
	return out
}
