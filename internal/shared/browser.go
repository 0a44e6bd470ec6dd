package shared

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

var getRuntime = func() string { return runtime.GOOS }

var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// OpenReport opens a written report with the system's default handler for its type
// (the browser, for HTML). It does not wait for the viewer to exit.
//
// Supports macOS, Linux, and Windows platforms.
func OpenReport(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArgument, path, err)
	}

	name, args, err := openCommand(getRuntime(), abs)
	if err != nil {
		return err
	}

	if err := startCommand(name, args...); err != nil {
		return fmt.Errorf("failed to open report: %w", err)
	}
	return nil
}

func openCommand(goos, target string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{target}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	case "windows":
		return "cmd", []string{"/c", "start", "", target}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
