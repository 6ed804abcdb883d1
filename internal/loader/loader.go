// Package loader initiates content loading into host windows.
package loader

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"splashkit/internal/config"
	"splashkit/internal/host"
	"splashkit/internal/logger"
)

const component = "Loader"

var (
	ErrInvalidArgument   = config.ErrInvalidArgument
	ErrUnsupportedScheme = config.ErrUnsupportedScheme
)

// Loader dispatches descriptors to the matching window load call. It only
// starts loads; failures the host reports afterwards are logged and
// dropped, leaving the window open and blank.
type Loader struct {
	baseDir string
	logger  logger.Logger
}

// New returns a Loader resolving relative paths against baseDir. An empty
// baseDir means the directory holding the running executable.
func New(baseDir string, log logger.Logger) (*Loader, error) {
	if baseDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to locate executable: %w", err)
		}
		baseDir = filepath.Dir(exe)
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base dir %s: %w", baseDir, err)
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Loader{baseDir: abs, logger: log}, nil
}

func (l *Loader) BaseDir() string {
	return l.baseDir
}

// Load starts loading d into w.
func (l *Loader) Load(role host.Role, w host.Window, d *config.Descriptor) error {
	if w == nil || d == nil || d.Kind == "" || d.Value == "" {
		return fmt.Errorf("%w: load into %s window needs a window and a descriptor with type and value",
			ErrInvalidArgument, role)
	}

	switch d.Kind {
	case config.KindRemote:
		address := d.Address()
		l.logger.Debug(component, "loading url", map[string]interface{}{
			"role":   string(role),
			"target": address,
		})
		w.LoadURL(address, l.report(role, "url", address))

	case config.KindLocal:
		ref := FileURL(l.Resolve(d.Path()))
		l.logger.Debug(component, "loading file", map[string]interface{}{
			"role":   string(role),
			"target": ref,
		})
		w.LoadFile(ref, l.report(role, "file", ref))

	default:
		l.logger.Warning(component, "unsupported load scheme", map[string]interface{}{
			"role": string(role),
			"type": string(d.Kind),
		})
		return fmt.Errorf("%w: %q", ErrUnsupportedScheme, d.Kind)
	}
	return nil
}

// Resolve anchors a relative path to the base directory. Absolute paths
// are returned unchanged.
func (l *Loader) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.baseDir, path)
}

func (l *Loader) report(role host.Role, scheme, target string) func(error) {
	return func(err error) {
		if err == nil {
			l.logger.Debug(component, "load finished", map[string]interface{}{
				"role":   string(role),
				"target": target,
			})
			return
		}
		l.logger.Error(component, fmt.Errorf("failed to load %s: %w", scheme, err), map[string]interface{}{
			"role":   string(role),
			"target": target,
		})
	}
}

// FileURL formats an absolute path as a file:// URL.
func FileURL(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		// Windows drive paths.
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}
