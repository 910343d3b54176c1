package shared

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

var goos = func() string { return runtime.GOOS }

// OpenBrowser opens url in the default system browser. Only http and https
// URLs are accepted; the TUI builds catalog links from the configured server
// base URL, so anything else is a wiring mistake, not a link.
func OpenBrowser(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%w: refusing to open %q", ErrInvalidArgument, url)
	}

	name := "xdg-open"
	args := []string{url}
	switch goos() {
	case "darwin":
		name = "open"
	case "windows":
		name, args = "cmd", []string{"/c", "start", url}
	}

	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}
