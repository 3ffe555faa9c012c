package dashboard

import (
	"context"
	"fmt"
	"runtime"

	"github.com/political-party-kit/partykit/pkg/executor"
)

// Open shows the file at path in the default browser.
func Open(ctx context.Context, exec executor.Executor, path string) error {
	name, args, err := openCommand(runtime.GOOS, path)
	if err != nil {
		return err
	}
	if err := exec.Start(ctx, name, args...); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

func openCommand(goos, path string) (string, []string, error) {
	switch goos {
	case "windows":
		return "cmd", []string{"/c", "start", `""`, path}, nil
	case "darwin":
		return "open", []string{path}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{path}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
