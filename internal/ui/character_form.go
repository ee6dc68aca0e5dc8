package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/character-browser/internal/model"
)

// SubmitFunc runs the create workflow for the form's data
type SubmitFunc func(ctx context.Context, data model.NewCharacterData) error

// ImageReader turns a picked file into an image blob
type ImageReader func(name string, r io.Reader) (*model.ImageFile, error)

// CharacterForm is the "create new character" form shown on the first page
type CharacterForm struct {
	window       fyne.Window
	localization *Localization
	submit       SubmitFunc
	readImage    ImageReader

	container       *fyne.Container
	titleLabel      *widget.Label
	nameLabel       *widget.Label
	statusLabel     *widget.Label
	imageLabel      *widget.Label
	nameEntry       *widget.Entry
	statusSelect    *widget.Select
	imageBtn        *widget.Button
	imageNameLabel  *widget.Label
	submitBtn       *widget.Button
	successLabel    *widget.Label
	validationLabel *widget.Label

	image     *model.ImageFile
	status    model.Status
	creating  bool
	hideTimer *time.Timer
}

// NewCharacterForm creates the creation form
func NewCharacterForm(window fyne.Window, localization *Localization, submit SubmitFunc, readImage ImageReader) *CharacterForm {
	f := &CharacterForm{
		window:       window,
		localization: localization,
		submit:       submit,
		readImage:    readImage,
		status:       model.StatusUnknown,
	}
	f.createUI()
	return f
}

func (f *CharacterForm) createUI() {
	f.titleLabel = widget.NewLabel("")
	f.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	f.successLabel = widget.NewLabel("")
	f.successLabel.Importance = widget.SuccessImportance
	f.successLabel.Hide()

	f.validationLabel = widget.NewLabel("")
	f.validationLabel.Importance = widget.DangerImportance
	f.validationLabel.Hide()

	f.nameLabel = widget.NewLabel("")
	f.nameEntry = widget.NewEntry()
	f.nameEntry.OnSubmitted = func(string) { f.onSubmit() }

	f.statusLabel = widget.NewLabel("")
	f.statusSelect = widget.NewSelect(nil, func(selected string) {
		f.status = f.localization.StatusFromLabel(selected)
	})

	f.imageLabel = widget.NewLabel("")
	f.imageBtn = widget.NewButton("", f.onChooseImage)
	f.imageNameLabel = widget.NewLabel("")
	f.imageNameLabel.Truncation = fyne.TextTruncateEllipsis

	f.submitBtn = widget.NewButton("", f.onSubmit)
	f.submitBtn.Importance = widget.HighImportance

	nameField := container.NewGridWrap(fyne.NewSize(FormEntryWidth, f.nameEntry.MinSize().Height), f.nameEntry)
	inputRow := container.NewHBox(
		f.nameLabel, nameField,
		f.statusLabel, f.statusSelect,
		f.imageLabel, f.imageBtn, f.imageNameLabel,
	)

	f.container = container.NewVBox(
		f.titleLabel,
		f.successLabel,
		inputRow,
		f.validationLabel,
		container.NewHBox(f.submitBtn),
		widget.NewSeparator(),
	)

	f.RefreshTexts()
}

// Container returns the form root
func (f *CharacterForm) Container() *fyne.Container {
	return f.container
}

// RefreshTexts re-applies localized labels
func (f *CharacterForm) RefreshTexts() {
	f.titleLabel.SetText(f.localization.GetText(KeyFormTitle))
	f.nameLabel.SetText(f.localization.GetText(KeyName))
	f.nameEntry.SetPlaceHolder(f.localization.GetText(KeyNamePlaceholder))
	f.statusLabel.SetText(f.localization.GetText(KeyStatus))
	f.imageLabel.SetText(f.localization.GetText(KeyImage))
	f.imageBtn.SetText(f.localization.GetText(KeyChooseImage))

	options := make([]string, 0, len(model.StatusOptions()))
	for _, status := range model.StatusOptions() {
		options = append(options, f.localization.StatusLabel(status))
	}
	f.statusSelect.Options = options
	f.statusSelect.SetSelected(f.localization.StatusLabel(f.status))

	if f.successLabel.Visible() {
		f.successLabel.SetText(f.localization.GetText(KeyCreated))
	}
	f.updateImageName()
	f.updateSubmitButton()
}

// SetCreating reflects the in-flight flag: inputs are locked while a creation runs
func (f *CharacterForm) SetCreating(creating bool) {
	if f.creating == creating {
		return
	}
	f.creating = creating

	if creating {
		f.nameEntry.Disable()
		f.statusSelect.Disable()
		f.imageBtn.Disable()
	} else {
		f.nameEntry.Enable()
		f.statusSelect.Enable()
		f.imageBtn.Enable()
	}
	f.updateSubmitButton()
}

// Draft returns the data currently entered
func (f *CharacterForm) Draft() model.NewCharacterData {
	return model.NewCharacterData{
		Name:      f.nameEntry.Text,
		Status:    f.status,
		ImageFile: f.image,
	}
}

// SetImage attaches a picked image to the draft
func (f *CharacterForm) SetImage(image *model.ImageFile) {
	f.image = image
	f.updateImageName()
}

// Reset restores the defaults: empty name, unknown status, no image
func (f *CharacterForm) Reset() {
	draft := model.NewCharacterDraft()
	f.nameEntry.SetText(draft.Name)
	f.status = draft.Status
	f.statusSelect.SetSelected(f.localization.StatusLabel(draft.Status))
	f.image = draft.ImageFile
	f.updateImageName()
	f.validationLabel.Hide()
}

func (f *CharacterForm) updateImageName() {
	if f.image == nil {
		f.imageNameLabel.SetText(f.localization.GetText(KeyNoImage))
		return
	}
	f.imageNameLabel.SetText(fmt.Sprintf("%s (%s)", f.image.Name, formatFileSize(f.image.Size())))
}

func (f *CharacterForm) updateSubmitButton() {
	if f.creating {
		f.submitBtn.SetText(f.localization.GetText(KeyCreating))
		f.submitBtn.Disable()
		return
	}
	f.submitBtn.SetText(f.localization.GetText(KeyCreate))
	f.submitBtn.Enable()
}

// onChooseImage opens a file picker restricted to image extensions
func (f *CharacterForm) onChooseImage() {
	if f.window == nil {
		return
	}
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, f.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		image, err := f.readImage(reader.URI().Name(), reader)
		if err != nil {
			log.Printf("Rejected image %s: %v", reader.URI().Name(), err)
			f.showValidation(f.localization.GetText(KeyInvalidImage))
			return
		}
		f.validationLabel.Hide()
		f.SetImage(image)
	}, f.window)
	picker.SetFilter(storage.NewExtensionFileFilter(ImageExtensions))
	picker.Show()
}

// onSubmit validates the draft and hands it to the create workflow
func (f *CharacterForm) onSubmit() {
	if f.creating {
		return
	}

	data := f.Draft()
	if err := data.Validate(); err != nil {
		switch {
		case errors.Is(err, model.ErrNameRequired):
			f.showValidation(f.localization.GetText(KeyNameRequired))
		case errors.Is(err, model.ErrImageRequired):
			f.showValidation(f.localization.GetText(KeyImageRequired))
		default:
			f.showValidation(err.Error())
		}
		return
	}
	f.validationLabel.Hide()

	if f.submit == nil {
		return
	}

	f.SetCreating(true)
	go func() {
		err := f.submit(context.Background(), data)
		fyne.Do(func() {
			f.onSubmitted(err)
		})
	}()
}

// onSubmitted resets the form after every submission; failures are shown
// by the state's error
func (f *CharacterForm) onSubmitted(err error) {
	f.SetCreating(false)
	f.Reset()
	if err != nil {
		log.Printf("Failed to create character: %v", err)
		return
	}

	f.showSuccess()
}

func (f *CharacterForm) showValidation(message string) {
	f.validationLabel.SetText(message)
	f.validationLabel.Show()
}

// showSuccess displays the confirmation and hides it after SuccessMessageAutoHide
func (f *CharacterForm) showSuccess() {
	f.successLabel.SetText(f.localization.GetText(KeyCreated))
	f.successLabel.Show()

	if f.hideTimer != nil {
		f.hideTimer.Stop()
	}
	f.hideTimer = time.AfterFunc(SuccessMessageAutoHide, func() {
		fyne.Do(func() {
			f.successLabel.Hide()
		})
	})
}

// formatFileSize formats file size in bytes to human readable format
func formatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
