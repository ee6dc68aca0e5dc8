package ui

import "github.com/ytget/character-browser/internal/model"

// pageView is the visibility plan for one snapshot of the main window
type pageView struct {
	TitleIsButton bool
	ShowForm      bool
	ShowLoading   bool
	ShowError     bool
	ShowEmpty     bool
	ShowPrevious  bool
	NextEnabled   bool
	ShowDetails   bool
	PageLabel     string
}

// newPageView derives what the main window shows for a snapshot
func newPageView(snap model.Snapshot, localization *Localization) pageView {
	onFirstPage := snap.CurrentPage == 1

	return pageView{
		TitleIsButton: !onFirstPage,
		ShowForm:      onFirstPage,
		ShowLoading:   snap.IsLoading,
		ShowError:     snap.Error != "",
		ShowEmpty:     snap.IsEmpty(),
		ShowPrevious:  snap.HasPrevious(),
		NextEnabled:   snap.HasNext(),
		ShowDetails:   snap.Selected != nil,
		PageLabel:     localization.PageLabel(snap.CurrentPage, snap.TotalPages),
	}
}
