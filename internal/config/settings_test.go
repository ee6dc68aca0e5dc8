package config

import (
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAPIBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetAPIBaseURL(); got != DefaultAPIBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultAPIBaseURL, got)
	}

	// Trailing slash is trimmed
	settings.SetAPIBaseURL("http://localhost:8080/api/")
	if got := settings.GetAPIBaseURL(); got != "http://localhost:8080/api" {
		t.Errorf("Expected trimmed base URL, got %s", got)
	}

	// Empty restores the default
	settings.SetAPIBaseURL("  ")
	if got := settings.GetAPIBaseURL(); got != DefaultAPIBaseURL {
		t.Errorf("Expected default base URL after reset, got %s", got)
	}
}

func TestSinkURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetSinkURL(); got != DefaultSinkURL {
		t.Errorf("Expected default sink %s, got %s", DefaultSinkURL, got)
	}

	settings.SetSinkURL("http://127.0.0.1:9999/hook")
	if got := settings.GetSinkURL(); got != "http://127.0.0.1:9999/hook" {
		t.Errorf("Expected custom sink, got %s", got)
	}
}

func TestSimulateOnRemoteFailure(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetSimulateOnRemoteFailure() {
		t.Error("Simulation should be enabled by default")
	}

	settings.SetSimulateOnRemoteFailure(false)
	if settings.GetSimulateOnRemoteFailure() {
		t.Error("Simulation should be disabled after setting false")
	}
}

func TestHTTPTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetHTTPTimeoutSeconds(); got != DefaultHTTPTimeoutSeconds {
		t.Errorf("Expected default timeout %d, got %d", DefaultHTTPTimeoutSeconds, got)
	}

	tests := []struct {
		input    int
		expected int
	}{
		{45, 45},
		{0, 0},
		{-5, 0},
		{500, MaxHTTPTimeoutSeconds},
	}

	for _, tt := range tests {
		settings.SetHTTPTimeoutSeconds(tt.input)
		if got := settings.GetHTTPTimeoutSeconds(); got != tt.expected {
			t.Errorf("SetHTTPTimeoutSeconds(%d): expected %d, got %d", tt.input, tt.expected, got)
		}
	}

	settings.SetHTTPTimeoutSeconds(10)
	if got := settings.GetHTTPTimeout(); got != 10*time.Second {
		t.Errorf("Expected 10s, got %v", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, got)
	}

	settings.SetLanguage("es")
	if got := settings.GetLanguage(); got != "es" {
		t.Errorf("Expected language es, got %s", got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "en", "es"} {
		if _, exists := options[lang]; !exists {
			t.Errorf("Language option %s should exist", lang)
		}
	}
}

func TestPlaceholderImageURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetPlaceholderImageURL(); got != DefaultPlaceholderImageURL {
		t.Errorf("Expected default placeholder %s, got %s", DefaultPlaceholderImageURL, got)
	}

	settings.SetPlaceholderImageURL("https://example.com/a.png")
	if got := settings.GetPlaceholderImageURL(); got != "https://example.com/a.png" {
		t.Errorf("Expected custom placeholder, got %s", got)
	}
}

func TestAPIOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetAPIBaseURL("http://localhost:1234")
	settings.SetSinkURL("http://localhost:1234/sink")
	settings.SetSimulateOnRemoteFailure(false)
	settings.SetHTTPTimeoutSeconds(5)
	settings.SetPlaceholderImageURL("https://example.com/p.png")

	opts := settings.APIOptions()

	if opts.BaseURL != "http://localhost:1234" {
		t.Errorf("Expected base URL from settings, got %s", opts.BaseURL)
	}
	if opts.SinkURL != "http://localhost:1234/sink" {
		t.Errorf("Expected sink URL from settings, got %s", opts.SinkURL)
	}
	if opts.SimulateOnRemoteFailure {
		t.Error("Expected simulation disabled")
	}
	if opts.HTTPClient == nil || opts.HTTPClient.Timeout != 5*time.Second {
		t.Errorf("Expected 5s HTTP timeout, got %+v", opts.HTTPClient)
	}
	if opts.Fabricator == nil || opts.Fabricator.Image != "https://example.com/p.png" {
		t.Error("Expected fabricator to use the configured placeholder image")
	}
}

func TestApplyEnv(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetSinkURL("http://stored/sink")

	t.Setenv("CHARACTER_BROWSER_API_BASE_URL", "http://env/api")
	t.Setenv("CHARACTER_BROWSER_SIMULATE_ON_REMOTE_FAILURE", "false")
	t.Setenv("CHARACTER_BROWSER_HTTP_TIMEOUT", "45s")
	t.Setenv("CHARACTER_BROWSER_LANGUAGE", "es")

	if err := ApplyEnv(settings); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got := settings.GetAPIBaseURL(); got != "http://env/api" {
		t.Errorf("Expected base URL from env, got %s", got)
	}
	if got := settings.GetSinkURL(); got != "http://stored/sink" {
		t.Errorf("Expected unset variable to keep stored sink, got %s", got)
	}
	if settings.GetSimulateOnRemoteFailure() {
		t.Error("Expected simulation disabled from env")
	}
	if got := settings.GetHTTPTimeoutSeconds(); got != 45 {
		t.Errorf("Expected timeout 45 from env, got %d", got)
	}
	if got := settings.GetLanguage(); got != "es" {
		t.Errorf("Expected language es from env, got %s", got)
	}
}

func TestApplyEnvTimeoutForms(t *testing.T) {
	tests := []struct {
		value    string
		expected int
	}{
		{"30", 30},
		{"500ms", 1},
		{"1.2s", 2},
		{"1m30s", 90},
		{"0", 0},
		{"0s", 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			app := test.NewApp()
			settings := NewSettings(app)

			t.Setenv("CHARACTER_BROWSER_HTTP_TIMEOUT", tt.value)
			if err := ApplyEnv(settings); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got := settings.GetHTTPTimeoutSeconds(); got != tt.expected {
				t.Errorf("Expected timeout %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestApplyEnvError(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	t.Setenv("CHARACTER_BROWSER_API_BASE_URL", "http://env/api")
	t.Setenv("CHARACTER_BROWSER_HTTP_TIMEOUT", "soon")

	err := ApplyEnv(settings)
	if err == nil {
		t.Fatal("Expected error for malformed duration")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("Expected parse env prefix, got %v", err)
	}
	if got := settings.GetAPIBaseURL(); got != DefaultAPIBaseURL {
		t.Errorf("Expected settings untouched on error, got %s", got)
	}
}
