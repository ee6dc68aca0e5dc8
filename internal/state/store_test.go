package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ytget/character-browser/internal/api"
	"github.com/ytget/character-browser/internal/model"
)

var rick = model.Character{
	ID:       1,
	Name:     "Rick Sanchez",
	Status:   model.StatusAlive,
	Species:  "Human",
	Gender:   "Male",
	Image:    "https://rickandmortyapi.com/api/character/avatar/1.jpeg",
	Origin:   model.Place{Name: "Earth (C-137)", URL: "https://rickandmortyapi.com/api/location/1"},
	Location: model.Place{Name: "Earth (Replacement Dimension)", URL: "https://rickandmortyapi.com/api/location/20"},
}

// fakeCreator returns a fixed result, optionally waiting on release first
type fakeCreator struct {
	release  chan struct{}
	started  chan struct{}
	err      error
	payloads []api.CreatePayload
	mu       sync.Mutex
}

func (f *fakeCreator) CreateRemote(ctx context.Context, payload api.CreatePayload) (*model.Character, error) {
	f.mu.Lock()
	f.payloads = append(f.payloads, payload)
	f.mu.Unlock()

	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return &model.Character{ID: 777, Name: payload.Name, Status: payload.Status}, nil
}

func TestNewStore_Defaults(t *testing.T) {
	s := NewStore(nil)
	snap := s.Snapshot()

	if snap.CurrentPage != 1 || snap.TotalPages != 1 {
		t.Errorf("Expected page 1 of 1, got %d of %d", snap.CurrentPage, snap.TotalPages)
	}
	if snap.Characters == nil || len(snap.Characters) != 0 {
		t.Errorf("Expected empty non-nil characters, got %v", snap.Characters)
	}
	if snap.Selected != nil || snap.IsLoading || snap.IsCreating || snap.Error != "" {
		t.Errorf("Unexpected initial state: %+v", snap)
	}
}

func TestStore_SelectCharacter(t *testing.T) {
	s := NewStore(nil)
	s.SetCharacters([]model.Character{rick})

	s.SelectCharacter(1)

	snap := s.Snapshot()
	if snap.Selected == nil || snap.Selected.Name != "Rick Sanchez" {
		t.Fatalf("Expected 'Rick Sanchez' selected, got %+v", snap.Selected)
	}
}

func TestStore_SelectUnknownIDIsNoOp(t *testing.T) {
	s := NewStore(nil)
	s.SetCharacters([]model.Character{rick, {ID: 2, Name: "Morty Smith"}})
	s.SelectCharacter(2)

	updates := 0
	s.SetUpdateCallback(func(model.Snapshot) { updates++ })

	s.SelectCharacter(404)

	snap := s.Snapshot()
	if snap.Selected == nil || snap.Selected.ID != 2 {
		t.Errorf("Expected selection unchanged, got %+v", snap.Selected)
	}
	if updates != 0 {
		t.Errorf("Expected no update notification, got %d", updates)
	}
}

func TestStore_DeselectIdempotent(t *testing.T) {
	s := NewStore(nil)
	s.SetCharacters([]model.Character{rick})
	s.SelectCharacter(1)

	for i := 0; i < 3; i++ {
		s.DeselectCharacter()
		if s.Snapshot().Selected != nil {
			t.Fatalf("Expected no selection after deselect #%d", i+1)
		}
	}
}

func TestStore_SetCharactersReplaces(t *testing.T) {
	s := NewStore(nil)
	listA := []model.Character{{ID: 1}, {ID: 2}}
	listB := []model.Character{{ID: 3}}

	s.SetCharacters(listA)
	s.SetCharacters(listB)

	got := s.Snapshot().Characters
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("Expected exactly listB, got %+v", got)
	}
}

func TestStore_SetPageNotifiesWatchers(t *testing.T) {
	s := NewStore(nil)

	var pages []int
	s.OnPageChange(func(page int) { pages = append(pages, page) })

	s.SetPage(2)
	s.SetPage(2)
	s.SetPage(50)

	want := []int{2, 2, 50}
	if len(pages) != len(want) {
		t.Fatalf("Expected %d notifications, got %d", len(want), len(pages))
	}
	for i := range want {
		if pages[i] != want[i] {
			t.Errorf("notification %d: expected page %d, got %d", i, want[i], pages[i])
		}
	}
	if s.Snapshot().CurrentPage != 50 {
		t.Errorf("Expected out-of-range page to be kept, got %d", s.Snapshot().CurrentPage)
	}
}

func TestStore_PlainSetters(t *testing.T) {
	s := NewStore(nil)

	s.SetLoading(true)
	s.SetError("boom")
	s.SetTotalPages(42)

	snap := s.Snapshot()
	if !snap.IsLoading || snap.Error != "boom" || snap.TotalPages != 42 {
		t.Errorf("Unexpected snapshot: %+v", snap)
	}

	s.SetError("")
	if s.Snapshot().Error != "" {
		t.Error("Expected empty message to clear the error")
	}
}

func TestStore_CreateCharacterFlagLifecycle(t *testing.T) {
	creator := &fakeCreator{release: make(chan struct{}), started: make(chan struct{})}
	s := NewStore(creator)
	s.SetCharacters([]model.Character{rick})
	s.SetError("stale")

	done := make(chan error, 1)
	go func() {
		done <- s.CreateCharacter(context.Background(), model.NewCharacterData{
			Name:      "Morty",
			Status:    model.StatusDead,
			ImageFile: &model.ImageFile{Name: "morty.png", Data: []byte("x")},
		})
	}()

	<-creator.started
	snap := s.Snapshot()
	if !snap.IsCreating {
		t.Error("Expected IsCreating=true while the request is pending")
	}
	if snap.Error != "" {
		t.Errorf("Expected error cleared at start, got %q", snap.Error)
	}

	close(creator.release)
	if err := <-done; err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	snap = s.Snapshot()
	if snap.IsCreating {
		t.Error("Expected IsCreating=false after completion")
	}
	if len(snap.Characters) != 2 {
		t.Fatalf("Expected exactly one prepended character, got %d", len(snap.Characters))
	}
	if snap.Characters[0].Name != "Morty" || snap.Characters[0].Status != model.StatusDead {
		t.Errorf("Expected Morty/Dead at index 0, got %+v", snap.Characters[0])
	}
	if snap.Characters[1].ID != rick.ID {
		t.Errorf("Expected previous characters after the new one, got %+v", snap.Characters[1])
	}

	payload := creator.payloads[0]
	if payload.Image == nil || payload.Image.Name != "morty.png" {
		t.Errorf("Expected image passed through, got %+v", payload.Image)
	}
}

func TestStore_CreateCharacterFailure(t *testing.T) {
	creator := &fakeCreator{err: &api.CreateError{Err: errors.New("sink down")}}
	s := NewStore(creator)
	s.SetCharacters([]model.Character{rick})

	err := s.CreateCharacter(context.Background(), model.NewCharacterData{Name: "Morty"})
	if err == nil {
		t.Fatal("Expected error")
	}

	snap := s.Snapshot()
	if snap.Error != api.MsgCreate {
		t.Errorf("Expected error %q, got %q", api.MsgCreate, snap.Error)
	}
	if len(snap.Characters) != 1 || snap.Characters[0].ID != rick.ID {
		t.Errorf("Expected characters untouched, got %+v", snap.Characters)
	}
	if snap.IsCreating {
		t.Error("Expected IsCreating=false after failure")
	}
}

func TestStore_CreateCharacterDefaultsStatus(t *testing.T) {
	creator := &fakeCreator{}
	s := NewStore(creator)

	if err := s.CreateCharacter(context.Background(), model.NewCharacterData{Name: "Squanchy"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if creator.payloads[0].Status != model.StatusUnknown {
		t.Errorf("Expected status %s, got %s", model.StatusUnknown, creator.payloads[0].Status)
	}
}

func TestStore_CreateCharacterWithoutCreator(t *testing.T) {
	s := NewStore(nil)
	err := s.CreateCharacter(context.Background(), model.NewCharacterData{Name: "Morty"})
	if !errors.Is(err, ErrNoCreator) {
		t.Fatalf("Expected ErrNoCreator, got %v", err)
	}
	if s.Snapshot().Error == "" {
		t.Error("Expected error recorded in state")
	}
}

// Sink failure swallowed by the real client: create resolves, no error recorded
func TestStore_CreateCharacterSimulatedOnSinkFailure(t *testing.T) {
	opts := api.DefaultOptions()
	opts.SinkURL = "http://127.0.0.1:1/unreachable"
	opts.HTTPClient.Timeout = 2 * time.Second
	client := api.NewClient(opts)

	s := NewStore(client)
	err := s.CreateCharacter(context.Background(), model.NewCharacterData{
		Name:      "Morty",
		Status:    model.StatusDead,
		ImageFile: &model.ImageFile{Name: "morty.png", Data: []byte("blob")},
	})
	if err != nil {
		t.Fatalf("Expected create to resolve, got %v", err)
	}

	snap := s.Snapshot()
	if snap.Error != "" {
		t.Errorf("Expected no error, got %q", snap.Error)
	}
	if snap.IsCreating {
		t.Error("Expected IsCreating=false")
	}
	if len(snap.Characters) != 1 || snap.Characters[0].Name != "Morty" || snap.Characters[0].Status != model.StatusDead {
		t.Errorf("Expected synthesized Morty/Dead at index 0, got %+v", snap.Characters)
	}
}

func TestStore_UpdateCallbackReceivesSnapshots(t *testing.T) {
	s := NewStore(nil)

	var last model.Snapshot
	calls := 0
	s.SetUpdateCallback(func(snap model.Snapshot) {
		calls++
		last = snap
	})

	s.SetCharacters([]model.Character{rick})
	s.SelectCharacter(1)

	if calls != 2 {
		t.Errorf("Expected 2 callbacks, got %d", calls)
	}
	if last.Selected == nil || last.Selected.ID != 1 {
		t.Errorf("Expected last snapshot to carry selection, got %+v", last.Selected)
	}
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := NewStore(nil)
	s.SetCharacters([]model.Character{rick})
	s.SelectCharacter(1)

	snap := s.Snapshot()
	snap.Characters[0].Name = "Mutated"
	snap.Selected.Name = "Mutated"

	again := s.Snapshot()
	if again.Characters[0].Name != "Rick Sanchez" || again.Selected.Name != "Rick Sanchez" {
		t.Error("Expected snapshot mutation not to leak into the store")
	}
}
