package fynehost

import (
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"

	"splashkit/internal/host"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/storage"
)

type window struct {
	host *Host
	role host.Role
	win  fyne.Window

	onLoaded []func()
	onReady  []func()
	closed   bool
}

var _ host.Window = (*window)(nil)

func newWindow(h *Host, role host.Role, fw fyne.Window) *window {
	return &window{host: h, role: role, win: fw}
}

func (w *window) RemoveMenu() {
	w.win.SetMainMenu(nil)
}

func (w *window) LoadURL(address string, done func(error)) {
	w.load(address, done)
}

func (w *window) LoadFile(ref string, done func(error)) {
	w.load(ref, done)
}

// load reads ref in the background through Fyne's storage repositories,
// which serve both file:// and http(s):// URIs, then renders on the main
// goroutine. A failed load still completes: the window is left blank and
// the loaded signals fire so the startup sequence carries on.
func (w *window) load(ref string, done func(error)) {
	go func() {
		res, err := fetch(ref)
		fyne.Do(func() {
			w.finish(res, err, done)
		})
	}()
}

type resource struct {
	name string
	mime string
	data []byte
}

func fetch(ref string) (resource, error) {
	u, err := parseRef(ref)
	if err != nil {
		return resource{}, fmt.Errorf("invalid uri %q: %w", ref, err)
	}
	rc, err := storage.Reader(u)
	if err != nil {
		return resource{}, fmt.Errorf("failed to open %s: %w", u, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return resource{}, fmt.Errorf("failed to read %s: %w", u, err)
	}
	return resource{name: u.Name(), mime: u.MimeType(), data: data}, nil
}

// parseRef turns ref into a fyne.URI. storage.ParseURI keeps file paths
// percent-encoded, so file references are decoded here first.
func parseRef(ref string) (fyne.URI, error) {
	if !strings.HasPrefix(strings.ToLower(ref), "file:") {
		return storage.ParseURI(ref)
	}
	u, err := url.Parse(ref)
	if err != nil {
		return nil, err
	}
	p := u.Path
	if runtime.GOOS == "windows" && len(p) > 2 && p[0] == '/' && p[2] == ':' {
		// file:///C:/dir
		p = p[1:]
	}
	return storage.NewFileURI(filepath.FromSlash(p)), nil
}

// finish sets the window content and fires the one-shot signals. Fyne has
// no first-frame callback, so ready-to-show follows content-loaded in the
// same tick.
func (w *window) finish(res resource, err error, done func(error)) {
	if w.closed {
		done(fmt.Errorf("%s window closed during load", w.role))
		return
	}
	if err != nil {
		w.win.SetContent(container.NewStack())
	} else {
		w.win.SetContent(render(res))
	}
	done(err)

	loaded, ready := w.onLoaded, w.onReady
	w.onLoaded, w.onReady = nil, nil
	for _, fn := range loaded {
		fn()
	}
	for _, fn := range ready {
		fn()
	}
}

func (w *window) OnceContentLoaded(fn func()) {
	w.onLoaded = append(w.onLoaded, fn)
}

func (w *window) OnceReadyToShow(fn func()) {
	w.onReady = append(w.onReady, fn)
}

func (w *window) Show() {
	if w.closed {
		return
	}
	w.win.Show()
}

func (w *window) Close() {
	if w.closed {
		return
	}
	w.win.Close()
	w.onClosed()
}

// Destroy closes the window; Fyne has no separate teardown.
func (w *window) Destroy() {
	w.Close()
}

func (w *window) onClosed() {
	if w.closed {
		return
	}
	w.closed = true
	w.host.windowClosed(w.role)
}
