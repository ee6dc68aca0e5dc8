package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Overrides holds the environment variables that take precedence over stored preferences
type Overrides struct {
	APIBaseURL              string        `env:"CHARACTER_BROWSER_API_BASE_URL"`
	SinkURL                 string        `env:"CHARACTER_BROWSER_SINK_URL"`
	SimulateOnRemoteFailure bool          `env:"CHARACTER_BROWSER_SIMULATE_ON_REMOTE_FAILURE"`
	HTTPTimeout             Seconds       `env:"CHARACTER_BROWSER_HTTP_TIMEOUT"`
	Language                string        `env:"CHARACTER_BROWSER_LANGUAGE"`
}

// ApplyEnv overlays environment variables on the stored settings. Unset
// variables keep the current values; a malformed one aborts without
// changing anything.
func ApplyEnv(s *Settings) error {
	overrides := Overrides{
		APIBaseURL:              s.GetAPIBaseURL(),
		SinkURL:                 s.GetSinkURL(),
		SimulateOnRemoteFailure: s.GetSimulateOnRemoteFailure(),
		HTTPTimeout:             Seconds(s.GetHTTPTimeoutSeconds()),
		Language:                s.GetLanguage(),
	}

	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	s.SetAPIBaseURL(overrides.APIBaseURL)
	s.SetSinkURL(overrides.SinkURL)
	s.SetSimulateOnRemoteFailure(overrides.SimulateOnRemoteFailure)
	s.SetHTTPTimeoutSeconds(int(overrides.HTTPTimeout))
	s.SetLanguage(overrides.Language)
	return nil
}

// Seconds is a timeout in whole seconds. It parses a bare integer ("30") as
// seconds and a duration ("500ms", "1m") rounded up to the next second, so
// a non-zero duration never turns into 0 (no timeout).
type Seconds int

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Seconds) UnmarshalText(text []byte) error {
	value := strings.TrimSpace(string(text))
	if n, err := strconv.Atoi(value); err == nil {
		*s = Seconds(n)
		return nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid timeout %q: %w", value, err)
	}
	if d <= 0 {
		*s = Seconds(d / time.Second)
		return nil
	}
	*s = Seconds((d + time.Second - 1) / time.Second)
	return nil
}
