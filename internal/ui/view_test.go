package ui

import (
	"testing"

	"github.com/ytget/character-browser/internal/model"
)

func TestNewPageView(t *testing.T) {
	l := NewLocalization()
	rick := model.Character{ID: 1, Name: "Rick Sanchez"}

	tests := []struct {
		name     string
		snap     model.Snapshot
		expected pageView
	}{
		{
			name: "first page loading",
			snap: model.Snapshot{Characters: []model.Character{}, CurrentPage: 1, TotalPages: 1, IsLoading: true},
			expected: pageView{
				ShowForm:    true,
				ShowLoading: true,
				PageLabel:   "Page 1 of 1",
			},
		},
		{
			name: "first page empty",
			snap: model.Snapshot{Characters: []model.Character{}, CurrentPage: 1, TotalPages: 1},
			expected: pageView{
				ShowForm:  true,
				ShowEmpty: true,
				PageLabel: "Page 1 of 1",
			},
		},
		{
			name: "first page of many",
			snap: model.Snapshot{Characters: []model.Character{rick}, CurrentPage: 1, TotalPages: 42},
			expected: pageView{
				ShowForm:    true,
				NextEnabled: true,
				PageLabel:   "Page 1 of 42",
			},
		},
		{
			name: "middle page with selection",
			snap: model.Snapshot{Characters: []model.Character{rick}, Selected: &rick, CurrentPage: 3, TotalPages: 42},
			expected: pageView{
				TitleIsButton: true,
				ShowPrevious:  true,
				NextEnabled:   true,
				ShowDetails:   true,
				PageLabel:     "Page 3 of 42",
			},
		},
		{
			name: "last page with error",
			snap: model.Snapshot{Characters: []model.Character{rick}, CurrentPage: 42, TotalPages: 42, Error: "boom"},
			expected: pageView{
				TitleIsButton: true,
				ShowError:     true,
				ShowPrevious:  true,
				PageLabel:     "Page 42 of 42",
			},
		},
		{
			name: "error on empty list hides empty text",
			snap: model.Snapshot{Characters: []model.Character{}, CurrentPage: 1, TotalPages: 1, Error: "boom"},
			expected: pageView{
				ShowForm:  true,
				ShowError: true,
				PageLabel: "Page 1 of 1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := newPageView(tt.snap, l); got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}
