package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"

	"github.com/ytget/character-browser/internal/model"
)

// Language codes
const (
	LangSystem  = "system"
	LangEnglish = "en"
	LangSpanish = "es"
)

// supportedTags lists the translations in matcher order; the first is the fallback
var supportedTags = []language.Tag{language.English, language.Spanish}

var languageMatcher = language.NewMatcher(supportedTags)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
	systemLocale    func() string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyCharacters        = "characters"
	KeyLoading           = "loading"
	KeyEmpty             = "empty"
	KeyPrevious          = "previous"
	KeyNext              = "next"
	KeyPageOf            = "page_of"
	KeyCardStatus        = "card_status"
	KeyFormTitle         = "form_title"
	KeyName              = "name"
	KeyNamePlaceholder   = "name_placeholder"
	KeyStatus            = "status"
	KeyImage             = "image"
	KeyChooseImage       = "choose_image"
	KeyNoImage           = "no_image"
	KeyCreate            = "create"
	KeyCreating          = "creating"
	KeyCreated           = "created"
	KeyNameRequired      = "name_required"
	KeyImageRequired     = "image_required"
	KeyInvalidImage      = "invalid_image"
	KeyStatusAlive       = "status_alive"
	KeyStatusDead        = "status_dead"
	KeyStatusUnknown     = "status_unknown"
	KeySpecies           = "species"
	KeyGender            = "gender"
	KeyOrigin            = "origin"
	KeyLocation          = "location"
	KeyClose             = "close"
	KeyOpenLinkFailed    = "open_link_failed"
	KeyFile              = "file"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyAPIBaseURL        = "api_base_url"
	KeySinkURL           = "sink_url"
	KeySimulate          = "simulate"
	KeyHTTPTimeout       = "http_timeout"
	KeyPlaceholderImage  = "placeholder_image"
	KeyConnectionSection = "connection_section"
	KeyInterfaceSection  = "interface_section"
	KeyAppliesOnRestart  = "applies_on_restart"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
		systemLocale: func() string {
			return string(lang.SystemLocale())
		},
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the closest
// translation to the OS locale.
func (l *Localization) SetLanguage(code string) {
	if code == LangSystem {
		code = ResolveLanguage(l.systemLocale())
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// ResolveLanguage maps a locale such as "es-AR" or "es_ES" onto a supported
// translation, falling back to English
func ResolveLanguage(locale string) string {
	// POSIX locales look like es_ES.UTF-8
	locale, _, _ = strings.Cut(locale, ".")
	locale = strings.ReplaceAll(locale, "_", "-")

	tag, err := language.Parse(locale)
	if err != nil {
		return LangEnglish
	}
	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return LangEnglish
	}
	base, _ := supportedTags[index].Base()
	return base.String()
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key formatted with args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// PageLabel returns the "Page X of Y" caption
func (l *Localization) PageLabel(current, total int) string {
	return l.Format(KeyPageOf, current, total)
}

// StatusLabel returns the localized name of a character status
func (l *Localization) StatusLabel(status model.Status) string {
	switch status {
	case model.StatusAlive:
		return l.GetText(KeyStatusAlive)
	case model.StatusDead:
		return l.GetText(KeyStatusDead)
	default:
		return l.GetText(KeyStatusUnknown)
	}
}

// StatusFromLabel is the inverse of StatusLabel for the current language
func (l *Localization) StatusFromLabel(label string) model.Status {
	for _, status := range model.StatusOptions() {
		if l.StatusLabel(status) == label {
			return status
		}
	}
	return model.StatusUnknown
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangEnglish: "English",
		LangSpanish: "Español",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:          "RICK & MORTY Challenge",
		KeyCharacters:        "Characters",
		KeyLoading:           "Loading characters...",
		KeyEmpty:             "No characters to show.",
		KeyPrevious:          "Previous",
		KeyNext:              "Next",
		KeyPageOf:            "Page %d of %d",
		KeyCardStatus:        "Status: %s",
		KeyFormTitle:         "Create New Character",
		KeyName:              "Name:",
		KeyNamePlaceholder:   "Character name",
		KeyStatus:            "Status:",
		KeyImage:             "Image:",
		KeyChooseImage:       "Choose image",
		KeyNoImage:           "No image selected",
		KeyCreate:            "Create character",
		KeyCreating:          "Creating...",
		KeyCreated:           "Character created successfully!",
		KeyNameRequired:      "Please enter a name",
		KeyImageRequired:     "Please choose an image",
		KeyInvalidImage:      "The selected file is not a valid image",
		KeyStatusAlive:       "Alive",
		KeyStatusDead:        "Dead",
		KeyStatusUnknown:     "Unknown",
		KeySpecies:           "Species",
		KeyGender:            "Gender",
		KeyOrigin:            "Origin",
		KeyLocation:          "Location",
		KeyClose:             "Close",
		KeyOpenLinkFailed:    "Could not open link",
		KeyFile:              "File",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyAPIBaseURL:        "API Base URL",
		KeySinkURL:           "Creation Sink URL",
		KeySimulate:          "Create locally when the sink fails",
		KeyHTTPTimeout:       "HTTP Timeout (seconds, 0 = none)",
		KeyPlaceholderImage:  "Placeholder Image URL",
		KeyConnectionSection: "Connection",
		KeyInterfaceSection:  "Interface",
		KeyAppliesOnRestart:  "Connection changes apply on next start.",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	// Spanish texts
	l.texts[LangSpanish] = map[string]string{
		KeyAppTitle:          "Desafio RICK & MORTY",
		KeyCharacters:        "Personajes",
		KeyLoading:           "Cargando personajes...",
		KeyEmpty:             "No hay personajes para mostrar.",
		KeyPrevious:          "Anterior",
		KeyNext:              "Siguiente",
		KeyPageOf:            "Página %d de %d",
		KeyCardStatus:        "Estado: %s",
		KeyFormTitle:         "Crear Nuevo Personaje",
		KeyName:              "Nombre:",
		KeyNamePlaceholder:   "Nombre del personaje",
		KeyStatus:            "Estado:",
		KeyImage:             "Imagen:",
		KeyChooseImage:       "Elegir imagen",
		KeyNoImage:           "Ninguna imagen seleccionada",
		KeyCreate:            "Crear personaje",
		KeyCreating:          "Creando...",
		KeyCreated:           "¡Personaje creado exitosamente!",
		KeyNameRequired:      "Por favor, ingrese un nombre",
		KeyImageRequired:     "Por favor, elija una imagen",
		KeyInvalidImage:      "El archivo seleccionado no es una imagen válida",
		KeyStatusAlive:       "Vivo",
		KeyStatusDead:        "Muerto",
		KeyStatusUnknown:     "Desconocido",
		KeySpecies:           "Especie",
		KeyGender:            "Género",
		KeyOrigin:            "Origen",
		KeyLocation:          "Ubicación",
		KeyClose:             "Cerrar",
		KeyOpenLinkFailed:    "No se pudo abrir el enlace",
		KeyFile:              "Archivo",
		KeySettings:          "Configuración",
		KeyLanguage:          "Idioma",
		KeyAPIBaseURL:        "URL base de la API",
		KeySinkURL:           "URL de destino de creación",
		KeySimulate:          "Crear localmente si el destino falla",
		KeyHTTPTimeout:       "Tiempo de espera HTTP (segundos, 0 = sin límite)",
		KeyPlaceholderImage:  "URL de imagen de reemplazo",
		KeyConnectionSection: "Conexión",
		KeyInterfaceSection:  "Interfaz",
		KeyAppliesOnRestart:  "Los cambios de conexión se aplican al reiniciar.",
		KeySave:              "Guardar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "¡Configuración guardada exitosamente!",
	}
}
