package platform

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	AMCommand      = "am"
)

// Command parameters
const (
	WindowsCmdFlag    = "/c"
	AndroidViewAction = "android.intent.action.VIEW"
)

// OpenURL opens an http(s) link in the system browser
func OpenURL(link string) error {
	cmd, err := BrowserCommand(runtime.GOOS, link)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// BrowserCommand builds the command that opens link on the given OS
func BrowserCommand(goos, link string) (*exec.Cmd, error) {
	parsed, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme: %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("url has no host: %s", link)
	}

	switch goos {
	case OSDarwin: // macOS
		return exec.Command(OpenCommand, link), nil
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", link), nil
	case OSLinux:
		return exec.Command(XDGOpenCommand, link), nil
	case OSAndroid:
		return exec.Command(AMCommand, "start", "-a", AndroidViewAction, "-d", link), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
