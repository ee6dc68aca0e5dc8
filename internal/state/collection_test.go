package state

import (
	"testing"

	"github.com/ytget/character-browser/internal/model"
)

func TestCollection_SelectIsLookupByID(t *testing.T) {
	var c Collection
	c.Set([]model.Character{
		{ID: 1, Name: "Rick Sanchez"},
		{ID: 2, Name: "Morty Smith"},
		{ID: 2, Name: "Duplicate Morty"},
	})

	if !c.Select(2) {
		t.Fatal("Expected id 2 to be found")
	}
	if got := c.Selected(); got == nil || got.Name != "Morty Smith" {
		t.Errorf("Expected first match 'Morty Smith', got %+v", got)
	}

	if c.Select(42) {
		t.Error("Expected unknown id to report false")
	}
	if got := c.Selected(); got == nil || got.ID != 2 {
		t.Errorf("Expected selection to survive unknown id, got %+v", got)
	}
}

func TestCollection_SelectionIsDetached(t *testing.T) {
	var c Collection
	c.Set([]model.Character{{ID: 1, Name: "Rick Sanchez"}})
	c.Select(1)

	c.Set([]model.Character{{ID: 20, Name: "Ants in my Eyes Johnson"}})

	got := c.Selected()
	if got == nil || got.Name != "Rick Sanchez" {
		t.Errorf("Expected stale selection to persist, got %+v", got)
	}
}

func TestCollection_SetCopiesInput(t *testing.T) {
	list := []model.Character{{ID: 1, Name: "Rick Sanchez"}}

	var c Collection
	c.Set(list)
	list[0].Name = "Changed"

	if c.Characters()[0].Name != "Rick Sanchez" {
		t.Error("Expected collection to be isolated from caller slice")
	}
}

func TestCollection_Prepend(t *testing.T) {
	var c Collection
	c.Set([]model.Character{{ID: 1}, {ID: 2}})
	c.Prepend(model.Character{ID: 300})

	got := c.Characters()
	if len(got) != 3 {
		t.Fatalf("Expected 3 characters, got %d", len(got))
	}
	want := []int{300, 1, 2}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("index %d: expected id %d, got %d", i, id, got[i].ID)
		}
	}
}

func TestCollection_DeselectIdempotent(t *testing.T) {
	var c Collection
	c.Set([]model.Character{{ID: 1}})
	c.Select(1)

	for i := 0; i < 3; i++ {
		c.Deselect()
		if c.Selected() != nil {
			t.Fatalf("Expected no selection after deselect #%d", i+1)
		}
	}
}

func TestPagination_Defaults(t *testing.T) {
	p := NewPagination()
	if p.CurrentPage() != 1 || p.TotalPages() != 1 || p.IsLoading() {
		t.Errorf("Unexpected defaults: page=%d total=%d loading=%v", p.CurrentPage(), p.TotalPages(), p.IsLoading())
	}
}

func TestPagination_SetPageVerbatim(t *testing.T) {
	p := NewPagination()
	p.SetTotalPages(3)

	for _, page := range []int{2, 99, 0, -4} {
		p.SetPage(page)
		if p.CurrentPage() != page {
			t.Errorf("Expected page %d to be stored verbatim, got %d", page, p.CurrentPage())
		}
	}
}

func TestCreation_Flag(t *testing.T) {
	var c Creation
	if c.InProgress() {
		t.Fatal("Expected idle by default")
	}
	c.Begin()
	if !c.InProgress() {
		t.Error("Expected in progress after Begin")
	}
	c.End()
	if c.InProgress() {
		t.Error("Expected idle after End")
	}
}
