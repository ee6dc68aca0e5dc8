package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/character-browser/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	baseURLEntry     *widget.Entry
	sinkURLEntry     *widget.Entry
	simulateCheck    *widget.Check
	timeoutEntry     *widget.Entry
	placeholderEntry *widget.Entry
	languageSelect   *widget.Select

	// display name -> language code
	languageCodes map[string]string
}

// ShowSettingsDialog builds and shows the settings dialog; onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	sd.sinkURLEntry = widget.NewEntry()
	sd.sinkURLEntry.SetPlaceHolder(config.DefaultSinkURL)

	sd.simulateCheck = widget.NewCheck(text(KeySimulate), nil)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxHTTPTimeoutSeconds))

	sd.placeholderEntry = widget.NewEntry()
	sd.placeholderEntry.SetPlaceHolder(config.DefaultPlaceholderImageURL)

	// Language selection shows display names, stores codes
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	restartNote := widget.NewLabel(text(KeyAppliesOnRestart))
	restartNote.Importance = widget.LowImportance

	form := container.NewVBox(
		widget.NewLabel(text(KeyConnectionSection)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyAPIBaseURL)+":"),
		sd.baseURLEntry,

		widget.NewLabel(text(KeySinkURL)+":"),
		sd.sinkURLEntry,
		sd.simulateCheck,

		widget.NewLabel(text(KeyHTTPTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(text(KeyPlaceholderImage)+":"),
		sd.placeholderEntry,
		restartNote,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyInterfaceSection)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.sinkURLEntry.SetText(sd.settings.GetSinkURL())
	sd.simulateCheck.SetChecked(sd.settings.GetSimulateOnRemoteFailure())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetHTTPTimeoutSeconds()))
	sd.placeholderEntry.SetText(sd.settings.GetPlaceholderImageURL())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
			break
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the dialog fields into the settings
func (sd *SettingsDialog) apply() {
	sd.settings.SetAPIBaseURL(sd.baseURLEntry.Text)
	sd.settings.SetSinkURL(sd.sinkURLEntry.Text)
	sd.settings.SetSimulateOnRemoteFailure(sd.simulateCheck.Checked)

	// Invalid numbers keep the stored timeout
	if timeoutStr := sd.timeoutEntry.Text; timeoutStr != "" {
		if timeout, err := strconv.Atoi(timeoutStr); err == nil {
			sd.settings.SetHTTPTimeoutSeconds(timeout)
		}
	}

	sd.settings.SetPlaceholderImageURL(sd.placeholderEntry.Text)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
