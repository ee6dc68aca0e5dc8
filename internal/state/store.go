package state

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/zoobzio/capitan"

	"github.com/ytget/character-browser/internal/api"
	"github.com/ytget/character-browser/internal/model"
)

// ErrNoCreator is recorded when CreateCharacter runs without a creator
var ErrNoCreator = errors.New("character creation is not available")

// Store is the single owner of the application state. All mutations go
// through its methods; callbacks run after the lock is released.
type Store struct {
	mu         sync.RWMutex
	collection Collection
	pagination Pagination
	creation   Creation
	errMsg     string

	creator api.Creator

	callbackMu   sync.RWMutex
	onUpdate     func(model.Snapshot) // callback for UI updates
	pageWatchers []func(page int)
}

// NewStore creates a store on page 1 with an empty collection
func NewStore(creator api.Creator) *Store {
	return &Store{
		collection: Collection{characters: []model.Character{}},
		pagination: NewPagination(),
		creator:    creator,
	}
}

// SetUpdateCallback sets the callback invoked with a snapshot after every mutation
func (s *Store) SetUpdateCallback(callback func(model.Snapshot)) {
	s.callbackMu.Lock()
	defer s.callbackMu.Unlock()
	s.onUpdate = callback
}

// OnPageChange registers a watcher for the pagination cursor
func (s *Store) OnPageChange(watcher func(page int)) {
	s.callbackMu.Lock()
	defer s.callbackMu.Unlock()
	s.pageWatchers = append(s.pageWatchers, watcher)
}

// Snapshot returns a consistent copy of the state
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// SetCharacters replaces the collection wholesale
func (s *Store) SetCharacters(list []model.Character) {
	s.mutate(func() {
		s.collection.Set(list)
	})
}

// SelectCharacter selects the first character with the given id.
// An unknown id leaves the state unchanged.
func (s *Store) SelectCharacter(id int) {
	s.mu.Lock()
	found := s.collection.Select(id)
	var name string
	if found {
		name = s.collection.selected.Name
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if !found {
		return
	}

	capitan.Emit(context.Background(), CharacterSelected,
		KeyCharacterID.Field(id),
		KeyCharacterName.Field(name),
	)
	s.notifyUpdate(snapshot)
}

// DeselectCharacter clears the selection
func (s *Store) DeselectCharacter() {
	s.mutate(func() {
		s.collection.Deselect()
	})
	capitan.Emit(context.Background(), CharacterDeselected)
}

// SetPage moves the pagination cursor. The value is stored verbatim and
// page watchers are notified even when it equals the current page.
func (s *Store) SetPage(page int) {
	s.mutate(func() {
		s.pagination.SetPage(page)
	})

	capitan.Emit(context.Background(), PageChanged, KeyPage.Field(page))

	s.callbackMu.RLock()
	watchers := make([]func(int), len(s.pageWatchers))
	copy(watchers, s.pageWatchers)
	s.callbackMu.RUnlock()

	for _, watcher := range watchers {
		watcher(page)
	}
}

// SetTotalPages stores the page count
func (s *Store) SetTotalPages(total int) {
	s.mutate(func() {
		s.pagination.SetTotalPages(total)
	})
}

// SetLoading sets the loading flag
func (s *Store) SetLoading(loading bool) {
	s.mutate(func() {
		s.pagination.SetLoading(loading)
	})
}

// SetError sets the error message; an empty message clears it
func (s *Store) SetError(message string) {
	s.mutate(func() {
		s.errMsg = message
	})
}

// CreateCharacter runs the create workflow: mark creating and clear the
// error, submit the payload, prepend the returned character on success or
// record the failure message, then clear the creating flag.
func (s *Store) CreateCharacter(ctx context.Context, data model.NewCharacterData) error {
	s.mutate(func() {
		s.creation.Begin()
		s.errMsg = ""
	})
	capitan.Emit(ctx, CreateStarted, KeyCharacterName.Field(data.Name))

	character, err := s.submit(ctx, data)

	s.mutate(func() {
		if err != nil {
			s.errMsg = err.Error()
		} else {
			s.collection.Prepend(*character)
		}
		s.creation.End()
	})

	if err != nil {
		log.Printf("Character creation failed for %q: %v", data.Name, err)
		capitan.Emit(ctx, CreateFailed, KeyError.Field(err.Error()))
		return err
	}

	capitan.Emit(ctx, CreateSucceeded,
		KeyCharacterID.Field(character.ID),
		KeyCharacterName.Field(character.Name),
	)
	return nil
}

// submit hands the payload to the creator
func (s *Store) submit(ctx context.Context, data model.NewCharacterData) (*model.Character, error) {
	if s.creator == nil {
		return nil, ErrNoCreator
	}

	character, err := s.creator.CreateRemote(ctx, api.NewCreatePayload(data))
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, errors.New("creator returned no character")
	}
	return character, nil
}

// mutate applies fn under the write lock and notifies the update callback
func (s *Store) mutate(fn func()) {
	s.mu.Lock()
	fn()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notifyUpdate(snapshot)
}

func (s *Store) snapshotLocked() model.Snapshot {
	return model.Snapshot{
		Characters:  s.collection.Characters(),
		Selected:    s.collection.Selected(),
		CurrentPage: s.pagination.CurrentPage(),
		TotalPages:  s.pagination.TotalPages(),
		IsLoading:   s.pagination.IsLoading(),
		IsCreating:  s.creation.InProgress(),
		Error:       s.errMsg,
	}
}

// notifyUpdate calls the update callback if set
func (s *Store) notifyUpdate(snapshot model.Snapshot) {
	s.callbackMu.RLock()
	callback := s.onUpdate
	s.callbackMu.RUnlock()

	if callback != nil {
		callback(snapshot)
	}
}
