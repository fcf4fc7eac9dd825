package browser

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/ports/driven"
	"github.com/custodia-labs/orgopen/internal/logger"
)

// Ensure System implements the interface.
var _ driven.Browser = (*System)(nil)

// System opens URLs with the host's open command.
type System struct {
	goos  string
	start func(cmd *exec.Cmd) error
}

// New creates a browser for the running platform.
func New() *System {
	return &System{goos: runtime.GOOS, start: (*exec.Cmd).Start}
}

// Open launches url and returns once the command has started.
// The opener is not tied to ctx so it outlives the process.
func (s *System) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, args, err := command(s.goos, url)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrBrowser, err)
	}

	logger.Debug("exec %s %v", name, args)
	cmd := exec.Command(name, args...)
	if err := s.start(cmd); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrBrowser, name, err)
	}
	return nil
}

// command returns the open command for goos.
func command(goos, url string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "windows":
		// The empty argument is the window title; start treats the first
		// quoted argument as one.
		return "cmd", []string{"/c", "start", "", url}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos":
		return "xdg-open", []string{url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
