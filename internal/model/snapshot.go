package model

// Snapshot is a read-only copy of the application state.
// An empty Error means no error is being shown.
type Snapshot struct {
	Characters  []Character
	Selected    *Character
	CurrentPage int
	TotalPages  int
	IsLoading   bool
	IsCreating  bool
	Error       string
}

// HasPrevious reports whether a previous page exists
func (s Snapshot) HasPrevious() bool {
	return s.CurrentPage > 1
}

// HasNext reports whether the next page is reachable
func (s Snapshot) HasNext() bool {
	return s.CurrentPage < s.TotalPages
}

// IsEmpty reports whether the empty-list placeholder should be shown
func (s Snapshot) IsEmpty() bool {
	return !s.IsLoading && s.Error == "" && len(s.Characters) == 0
}
