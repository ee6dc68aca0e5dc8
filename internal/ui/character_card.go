package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/character-browser/internal/model"
)

// CharacterCard is a tappable grid cell showing a character's image, name and status
type CharacterCard struct {
	widget.BaseWidget

	character    model.Character
	localization *Localization
	images       *imageCache

	image       *canvas.Image
	nameLabel   *widget.Label
	statusDot   *canvas.Rectangle
	statusLabel *widget.Label

	// OnTapped receives the id of the tapped character
	OnTapped func(id int)
}

// NewCharacterCard creates an empty card; SetCharacter fills it
func NewCharacterCard(localization *Localization, images *imageCache) *CharacterCard {
	c := &CharacterCard{
		localization: localization,
		images:       images,
	}
	c.ExtendBaseWidget(c)
	c.createUI()
	return c
}

func (c *CharacterCard) createUI() {
	c.image = canvas.NewImageFromResource(theme.AccountIcon())
	c.image.FillMode = canvas.ImageFillContain
	c.image.SetMinSize(fyne.NewSize(CardImageSize, CardImageSize))

	c.nameLabel = widget.NewLabel("")
	c.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.nameLabel.Alignment = fyne.TextAlignCenter
	c.nameLabel.Truncation = fyne.TextTruncateEllipsis

	c.statusDot = canvas.NewRectangle(StatusColor(model.StatusUnknown))
	c.statusDot.SetMinSize(fyne.NewSize(8, 8))
	c.statusDot.CornerRadius = 4

	c.statusLabel = widget.NewLabel("")
	c.statusLabel.Importance = widget.LowImportance
}

// SetCharacter shows the given character
func (c *CharacterCard) SetCharacter(character model.Character) {
	previousImage := c.character.Image
	c.character = character

	c.nameLabel.SetText(character.Name)
	c.statusLabel.SetText(c.localization.Format(KeyCardStatus, character.DisplayStatus()))
	c.statusDot.FillColor = StatusColor(character.Status)
	c.statusDot.Refresh()

	if character.Image != previousImage {
		c.image.Resource = theme.AccountIcon()
		c.image.Refresh()
		url := character.Image
		c.images.Load(url, func(res fyne.Resource) {
			// the card may have been recycled for another character meanwhile
			if c.character.Image != url {
				return
			}
			c.image.Resource = res
			c.image.Refresh()
		})
	}
}

// Character returns the character currently shown
func (c *CharacterCard) Character() model.Character {
	return c.character
}

// Tapped selects the character
func (c *CharacterCard) Tapped(*fyne.PointEvent) {
	if c.OnTapped != nil && c.character.ID != 0 {
		c.OnTapped(c.character.ID)
	}
}

// CreateRenderer creates the widget renderer
func (c *CharacterCard) CreateRenderer() fyne.WidgetRenderer {
	status := container.NewHBox(
		container.NewCenter(c.statusDot),
		c.statusLabel,
	)
	content := container.NewBorder(
		nil,
		container.NewVBox(c.nameLabel, container.NewCenter(status)),
		nil,
		nil,
		c.image,
	)
	return widget.NewSimpleRenderer(container.NewPadded(content))
}
