package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
	IconLanguage = "🌐"
	IconLink     = "↗"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing (cards / details / form)
const (
	CardWidth       float32 = 180
	CardHeight      float32 = 230
	CardImageSize   float32 = 150
	DetailsWidth    float32 = 300
	DetailsImageMax float32 = 260
	FormEntryWidth  float32 = 220
)

// Window dialogs
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 440
)

// Timings
const (
	SuccessMessageAutoHide = 3 * time.Second
)

// Supported image extensions for the file picker
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp"}
