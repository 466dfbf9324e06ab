// Package browser opens canonical record URLs in the platform's default
// web browser.
package browser

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// openers maps each platform to the command that hands a URL to the
// default browser.
var openers = map[string][]string{
	"darwin":  {"open"},
	"linux":   {"xdg-open"},
	"windows": {"rundll32", "url.dll,FileProtocolHandler"},
}

// Opener launches URLs in the system browser.
type Opener struct {
	logger *slog.Logger
}

// NewOpener creates a new Opener.
func NewOpener(logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{logger: logger}
}

// Open launches the URL in the default browser without waiting for the
// browser to exit.
func (o *Opener) Open(url string) error {
	if url == "" {
		return fmt.Errorf("no URL to open")
	}

	base, ok := openers[runtime.GOOS]
	if !ok {
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	args := append(base[1:], url)
	cmd := exec.Command(base[0], args...)
	if err := cmd.Start(); err != nil {
		o.logger.Error("failed to open URL", "url", url, "error", err)
		return fmt.Errorf("failed to open %s: %w", url, err)
	}

	o.logger.Debug("opened URL in browser", "url", url)

	// Detach; the browser outlives us and we never reap it.
	go func() { _ = cmd.Wait() }()
	return nil
}
