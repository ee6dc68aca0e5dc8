package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/character-browser/internal/model"
)

// CharacterDetails is the side panel for the selected character
type CharacterDetails struct {
	window       fyne.Window
	localization *Localization
	images       *imageCache
	openURL      func(string) error

	container   *fyne.Container
	closeBtn    *widget.Button
	image       *canvas.Image
	nameLabel   *widget.Label
	fieldsForm  *widget.Form
	originBtn   *widget.Button
	locationBtn *widget.Button

	statusValue  *widget.Label
	speciesValue *widget.Label
	genderValue  *widget.Label

	character *model.Character

	// OnClose is called when the close button is pressed
	OnClose func()
}

// NewCharacterDetails creates a hidden details panel
func NewCharacterDetails(window fyne.Window, localization *Localization, images *imageCache, openURL func(string) error) *CharacterDetails {
	d := &CharacterDetails{
		window:       window,
		localization: localization,
		images:       images,
		openURL:      openURL,
	}
	d.createUI()
	d.container.Hide()
	return d
}

func (d *CharacterDetails) createUI() {
	d.closeBtn = widget.NewButton(IconClose, func() {
		if d.OnClose != nil {
			d.OnClose()
		}
	})
	d.closeBtn.Importance = widget.LowImportance

	d.image = canvas.NewImageFromResource(theme.AccountIcon())
	d.image.FillMode = canvas.ImageFillContain
	d.image.SetMinSize(fyne.NewSize(DetailsImageMax, DetailsImageMax))

	d.nameLabel = widget.NewLabel("")
	d.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	d.nameLabel.Alignment = fyne.TextAlignCenter
	d.nameLabel.Wrapping = fyne.TextWrapWord

	d.statusValue = widget.NewLabel("")
	d.speciesValue = widget.NewLabel("")
	d.genderValue = widget.NewLabel("")

	d.originBtn = widget.NewButton("", func() { d.openPlace(d.origin()) })
	d.originBtn.Importance = widget.LowImportance
	d.locationBtn = widget.NewButton("", func() { d.openPlace(d.location()) })
	d.locationBtn.Importance = widget.LowImportance

	d.fieldsForm = widget.NewForm()
	d.buildFormItems()

	header := container.NewBorder(nil, nil, nil, d.closeBtn, d.nameLabel)
	body := container.NewVBox(header, d.image, d.fieldsForm)

	// fixed panel width
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(DetailsWidth, 0))

	d.container = container.NewStack(spacer, container.NewVScroll(body))
}

func (d *CharacterDetails) buildFormItems() {
	d.fieldsForm.Items = []*widget.FormItem{
		widget.NewFormItem(d.localization.GetText(KeyStatus), d.statusValue),
		widget.NewFormItem(d.localization.GetText(KeySpecies), d.speciesValue),
		widget.NewFormItem(d.localization.GetText(KeyGender), d.genderValue),
		widget.NewFormItem(d.localization.GetText(KeyOrigin), d.originBtn),
		widget.NewFormItem(d.localization.GetText(KeyLocation), d.locationBtn),
	}
	d.fieldsForm.Refresh()
}

// Container returns the panel root
func (d *CharacterDetails) Container() *fyne.Container {
	return d.container
}

// SetCharacter shows the panel for character, or hides it when nil
func (d *CharacterDetails) SetCharacter(character *model.Character) {
	if character == nil {
		d.character = nil
		d.container.Hide()
		return
	}

	previousImage := ""
	if d.character != nil {
		previousImage = d.character.Image
	}
	copied := *character
	d.character = &copied

	d.nameLabel.SetText(copied.Name)
	d.statusValue.SetText(d.localization.StatusLabel(copied.Status))
	d.speciesValue.SetText(valueOrDash(copied.Species))
	d.genderValue.SetText(valueOrDash(copied.Gender))
	d.setPlaceButton(d.originBtn, copied.Origin)
	d.setPlaceButton(d.locationBtn, copied.Location)

	if copied.Image != previousImage {
		d.image.Resource = theme.AccountIcon()
		d.image.Refresh()
		url := copied.Image
		d.images.Load(url, func(res fyne.Resource) {
			if d.character == nil || d.character.Image != url {
				return
			}
			d.image.Resource = res
			d.image.Refresh()
		})
	}

	d.container.Show()
}

// RefreshTexts re-applies localized labels
func (d *CharacterDetails) RefreshTexts() {
	d.buildFormItems()
	d.closeBtn.SetText(IconClose)
	if d.character != nil {
		d.statusValue.SetText(d.localization.StatusLabel(d.character.Status))
	}
}

func (d *CharacterDetails) origin() model.Place {
	if d.character == nil {
		return model.Place{}
	}
	return d.character.Origin
}

func (d *CharacterDetails) location() model.Place {
	if d.character == nil {
		return model.Place{}
	}
	return d.character.Location
}

// setPlaceButton labels the button with the place name; places without a URL are not clickable
func (d *CharacterDetails) setPlaceButton(btn *widget.Button, place model.Place) {
	if place.URL == "" {
		btn.SetText(valueOrDash(place.Name))
		btn.Disable()
		return
	}
	btn.SetText(place.Name + " " + IconLink)
	btn.Enable()
}

func (d *CharacterDetails) openPlace(place model.Place) {
	if place.URL == "" || d.openURL == nil {
		return
	}
	if err := d.openURL(place.URL); err != nil {
		log.Printf("Failed to open %s: %v", place.URL, err)
		dialog.ShowError(fmt.Errorf("%s: %w", d.localization.GetText(KeyOpenLinkFailed), err), d.window)
	}
}

func valueOrDash(value string) string {
	if value == "" {
		return DashPlaceholder
	}
	return value
}
