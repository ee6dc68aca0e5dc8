package config

import (
	"net/http"
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/character-browser/internal/api"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL              = "api_base_url"
	KeySinkURL                 = "sink_url"
	KeySimulateOnRemoteFailure = "simulate_on_remote_failure"
	KeyHTTPTimeoutSeconds      = "http_timeout_seconds"
	KeyLanguage                = "app_language"
	KeyPlaceholderImageURL     = "placeholder_image_url"
)

// Default values
const (
	DefaultAPIBaseURL              = api.DefaultBaseURL
	DefaultSinkURL                 = api.DefaultSinkURL
	DefaultSimulateOnRemoteFailure = true
	DefaultHTTPTimeoutSeconds      = 30
	DefaultLanguage                = "system"
	DefaultPlaceholderImageURL     = api.DefaultPlaceholderImage

	MaxHTTPTimeoutSeconds = 120
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the character API base URL
func (s *Settings) GetAPIBaseURL() string {
	value := s.app.Preferences().String(KeyAPIBaseURL)
	if value == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return value
}

// SetAPIBaseURL sets the character API base URL; empty restores the default
func (s *Settings) SetAPIBaseURL(url string) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		url = DefaultAPIBaseURL
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// GetSinkURL returns the endpoint that receives simulated creations
func (s *Settings) GetSinkURL() string {
	value := s.app.Preferences().String(KeySinkURL)
	if value == "" {
		s.SetSinkURL(DefaultSinkURL)
		return DefaultSinkURL
	}
	return value
}

// SetSinkURL sets the creation sink; empty restores the default
func (s *Settings) SetSinkURL(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		url = DefaultSinkURL
	}
	s.app.Preferences().SetString(KeySinkURL, url)
}

// GetSimulateOnRemoteFailure returns whether creation succeeds locally when the sink fails
func (s *Settings) GetSimulateOnRemoteFailure() bool {
	return s.app.Preferences().BoolWithFallback(KeySimulateOnRemoteFailure, DefaultSimulateOnRemoteFailure)
}

// SetSimulateOnRemoteFailure sets whether sink failures are swallowed
func (s *Settings) SetSimulateOnRemoteFailure(simulate bool) {
	s.app.Preferences().SetBool(KeySimulateOnRemoteFailure, simulate)
}

// GetHTTPTimeoutSeconds returns the HTTP timeout in seconds; 0 disables it
func (s *Settings) GetHTTPTimeoutSeconds() int {
	return s.app.Preferences().IntWithFallback(KeyHTTPTimeoutSeconds, DefaultHTTPTimeoutSeconds)
}

// SetHTTPTimeoutSeconds sets the HTTP timeout, clamped to 0..MaxHTTPTimeoutSeconds
func (s *Settings) SetHTTPTimeoutSeconds(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > MaxHTTPTimeoutSeconds {
		seconds = MaxHTTPTimeoutSeconds
	}
	s.app.Preferences().SetInt(KeyHTTPTimeoutSeconds, seconds)
}

// GetHTTPTimeout returns the HTTP timeout as a duration
func (s *Settings) GetHTTPTimeout() time.Duration {
	return time.Duration(s.GetHTTPTimeoutSeconds()) * time.Second
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"es":     "Español",
	}
}

// GetPlaceholderImageURL returns the image used for simulated characters
func (s *Settings) GetPlaceholderImageURL() string {
	value := s.app.Preferences().String(KeyPlaceholderImageURL)
	if value == "" {
		s.SetPlaceholderImageURL(DefaultPlaceholderImageURL)
		return DefaultPlaceholderImageURL
	}
	return value
}

// SetPlaceholderImageURL sets the placeholder image; empty restores the default
func (s *Settings) SetPlaceholderImageURL(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		url = DefaultPlaceholderImageURL
	}
	s.app.Preferences().SetString(KeyPlaceholderImageURL, url)
}

// APIOptions builds client options from the current settings
func (s *Settings) APIOptions() api.Options {
	opts := api.DefaultOptions()
	opts.BaseURL = s.GetAPIBaseURL()
	opts.SinkURL = s.GetSinkURL()
	opts.SimulateOnRemoteFailure = s.GetSimulateOnRemoteFailure()
	opts.HTTPClient = &http.Client{Timeout: s.GetHTTPTimeout()}
	opts.Fabricator.Image = s.GetPlaceholderImageURL()
	return opts
}
