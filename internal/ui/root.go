package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/character-browser/internal/config"
	"github.com/ytget/character-browser/internal/model"
	"github.com/ytget/character-browser/internal/platform"
)

// CharacterStore is the part of the shared state the window talks to
type CharacterStore interface {
	Snapshot() model.Snapshot
	SetUpdateCallback(callback func(model.Snapshot))
	SelectCharacter(id int)
	DeselectCharacter()
	SetPage(page int)
	CreateCharacter(ctx context.Context, data model.NewCharacterData) error
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	store        CharacterStore
	settings     *config.Settings
	localization *Localization
	images       *imageCache

	titleLabel   *widget.Label
	titleBtn     *widget.Button
	settingsBtn  *widget.Button
	form         *CharacterForm
	headingLabel *widget.Label
	loadingBar   *widget.ProgressBarInfinite
	loadingLabel *widget.Label
	loadingRow   *fyne.Container
	errorLabel   *widget.Label
	emptyLabel   *widget.Label
	grid         *widget.GridWrap
	prevBtn      *widget.Button
	nextBtn      *widget.Button
	pageLabel    *widget.Label
	details      *CharacterDetails

	// last rendered state; touched on the UI thread only
	snapshot model.Snapshot
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, store CharacterStore, settings *config.Settings) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		store:        store,
		settings:     settings,
		localization: localization,
		images:       newImageCache(),
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Set up callback for state updates
	ui.store.SetUpdateCallback(ui.onStateUpdate)
	ui.render(ui.store.Snapshot())

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Title: plain on page 1, a "back to first page" button elsewhere
	ui.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.titleBtn = widget.NewButton("", func() {
		ui.store.SetPage(1)
	})
	ui.titleBtn.Importance = widget.LowImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	titleRow := container.NewBorder(nil, nil, nil, ui.settingsBtn,
		container.NewCenter(container.NewStack(ui.titleLabel, ui.titleBtn)))

	ui.form = NewCharacterForm(ui.window, ui.localization, ui.store.CreateCharacter, platform.ReadImage)

	ui.headingLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ui.loadingBar = widget.NewProgressBarInfinite()
	ui.loadingLabel = widget.NewLabel("")
	ui.loadingRow = container.NewBorder(nil, nil, ui.loadingLabel, nil, ui.loadingBar)

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord

	ui.emptyLabel = widget.NewLabel("")

	top := container.NewVBox(
		titleRow,
		ui.form.Container(),
		ui.headingLabel,
		ui.loadingRow,
		ui.errorLabel,
		ui.emptyLabel,
	)

	ui.grid = widget.NewGridWrap(
		func() int {
			return len(ui.snapshot.Characters)
		},
		func() fyne.CanvasObject { return ui.createCard() },
		func(id widget.GridWrapItemID, obj fyne.CanvasObject) { ui.updateCard(id, obj) },
	)

	ui.prevBtn = widget.NewButton("", func() {
		ui.store.SetPage(ui.snapshot.CurrentPage - 1)
	})
	ui.nextBtn = widget.NewButton("", func() {
		ui.store.SetPage(ui.snapshot.CurrentPage + 1)
	})
	ui.pageLabel = widget.NewLabel("")
	pagination := container.NewCenter(container.NewHBox(ui.prevBtn, ui.pageLabel, ui.nextBtn))

	ui.details = NewCharacterDetails(ui.window, ui.localization, ui.images, platform.OpenURL)
	ui.details.OnClose = ui.store.DeselectCharacter

	content := container.NewBorder(
		top,                    // top
		pagination,             // bottom
		nil,                    // left
		ui.details.Container(), // right
		ui.grid,                // center
	)

	ui.refreshUITexts()
	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
	ui.render(ui.snapshot)
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	title := ui.localization.GetText(KeyAppTitle)
	ui.window.SetTitle(title)
	ui.titleLabel.SetText(title)
	ui.titleBtn.SetText(title)

	ui.headingLabel.SetText(ui.localization.GetText(KeyCharacters))
	ui.loadingLabel.SetText(ui.localization.GetText(KeyLoading))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyEmpty))
	ui.prevBtn.SetText(ui.localization.GetText(KeyPrevious))
	ui.nextBtn.SetText(ui.localization.GetText(KeyNext))

	ui.form.RefreshTexts()
	ui.details.RefreshTexts()
	ui.grid.Refresh()
}

// onStateUpdate receives snapshots from the store, possibly off the UI thread
func (ui *RootUI) onStateUpdate(snapshot model.Snapshot) {
	fyne.Do(func() {
		ui.render(snapshot)
	})
}

// render applies a snapshot to the widgets
func (ui *RootUI) render(snapshot model.Snapshot) {
	pageChanged := snapshot.CurrentPage != ui.snapshot.CurrentPage
	ui.snapshot = snapshot
	view := newPageView(snapshot, ui.localization)

	setVisible(ui.titleBtn, view.TitleIsButton)
	setVisible(ui.titleLabel, !view.TitleIsButton)
	setVisible(ui.form.Container(), view.ShowForm)
	ui.form.SetCreating(snapshot.IsCreating)

	setVisible(ui.loadingRow, view.ShowLoading)
	if view.ShowLoading {
		ui.loadingBar.Start()
	} else {
		ui.loadingBar.Stop()
	}

	ui.errorLabel.SetText(snapshot.Error)
	setVisible(ui.errorLabel, view.ShowError)
	setVisible(ui.emptyLabel, view.ShowEmpty)

	setVisible(ui.prevBtn, view.ShowPrevious)
	if view.NextEnabled {
		ui.nextBtn.Enable()
	} else {
		ui.nextBtn.Disable()
	}
	ui.pageLabel.SetText(view.PageLabel)

	ui.details.SetCharacter(snapshot.Selected)

	ui.grid.Refresh()
	if pageChanged {
		ui.grid.ScrollToTop()
	}
}

// createCard creates a grid cell
func (ui *RootUI) createCard() fyne.CanvasObject {
	card := NewCharacterCard(ui.localization, ui.images)
	card.OnTapped = ui.store.SelectCharacter
	return card
}

// updateCard binds a grid cell to the character at id
func (ui *RootUI) updateCard(id widget.GridWrapItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(ui.snapshot.Characters) {
		return
	}
	if card, ok := item.(*CharacterCard); ok {
		card.SetCharacter(ui.snapshot.Characters[id])
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	previousLanguage := ui.settings.GetLanguage()
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		if lang := ui.settings.GetLanguage(); lang != previousLanguage {
			ui.onLanguageChange(lang)
		}
	})
}

func setVisible(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}
